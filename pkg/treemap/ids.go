package treemap

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource produces unique identifiers for generated visual sub-resources,
// such as SVG gradient definitions. Sources are call-scoped: create one per
// render instead of sharing process-wide state.
type IDSource interface {
	// Next returns a fresh identifier starting with prefix.
	Next(prefix string) string
}

// NewSequentialIDs returns an IDSource producing prefix-1, prefix-2, ...
// It is deterministic and not safe for concurrent use; give each render its
// own source.
func NewSequentialIDs() IDSource {
	return &sequentialIDs{}
}

type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) Next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

// NewUUIDIDs returns an IDSource backed by random UUIDs. Identifiers are
// unique across sources and safe to interleave, at the cost of
// determinism.
func NewUUIDIDs() IDSource {
	return uuidIDs{}
}

type uuidIDs struct{}

func (uuidIDs) Next(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
