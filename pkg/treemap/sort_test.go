package treemap

import "testing"

func TestSortSelectionRanksDescending(t *testing.T) {
	items := []Item{
		{EntityID: "a", SizeValue: 2},
		{EntityID: "b", SizeValue: 1},
		{EntityID: "c", SizeValue: 3},
	}
	sortSelection(items)
	if got, want := entityIDs(items), []string{"c", "a", "b"}; !equalStrings(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortSelectionStable(t *testing.T) {
	items := []Item{
		{EntityID: "first", SizeValue: 5},
		{EntityID: "second", SizeValue: 5},
		{EntityID: "third", SizeValue: 5},
	}
	sortSelection(items)
	if got, want := entityIDs(items), []string{"first", "second", "third"}; !equalStrings(got, want) {
		t.Errorf("ties reordered: %v", got)
	}
}

func TestDisplayOrder(t *testing.T) {
	items := []Item{
		{EntityID: "b", Label: "Beta", SortValue: 10},
		{EntityID: "c", Label: "Alpha", SortValue: 30},
		{EntityID: "a", Label: "Gamma", SortValue: 20},
	}

	tests := []struct {
		name      string
		sortBy    SortBy
		ascending bool
		want      []string
	}{
		{name: "value descending", sortBy: SortByValue, want: []string{"c", "a", "b"}},
		{name: "value ascending reverses", sortBy: SortByValue, ascending: true, want: []string{"b", "a", "c"}},
		{name: "entity id lexicographic", sortBy: SortByEntityID, want: []string{"a", "b", "c"}},
		{name: "entity id ascending reverses", sortBy: SortByEntityID, ascending: true, want: []string{"c", "b", "a"}},
		{name: "label lexicographic", sortBy: SortByLabel, want: []string{"c", "b", "a"}},
		{name: "default preserves input", sortBy: SortByDefault, want: []string{"b", "c", "a"}},
		{name: "default ignores ascending", sortBy: SortByDefault, ascending: true, want: []string{"b", "c", "a"}},
		{name: "unset falls back to value", sortBy: "", want: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entityIDs(displayOrder(items, tt.sortBy, tt.ascending))
			if !equalStrings(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplayOrderCopies(t *testing.T) {
	items := []Item{{EntityID: "b", SortValue: 1}, {EntityID: "a", SortValue: 2}}
	displayOrder(items, SortByEntityID, false)
	if items[0].EntityID != "b" {
		t.Error("displayOrder mutated its input")
	}
}

func TestSortLayout(t *testing.T) {
	entries := func() []weighted {
		return []weighted{
			{item: Item{EntityID: "b", Label: "Beta"}, area: 10},
			{item: Item{EntityID: "c", Label: "Alpha"}, area: 30},
			{item: Item{EntityID: "a", Label: "Gamma"}, area: 20},
		}
	}

	tests := []struct {
		name   string
		sortBy SortBy
		want   []string
	}{
		{name: "value sorts by area descending", sortBy: SortByValue, want: []string{"c", "a", "b"}},
		{name: "entity id lexicographic", sortBy: SortByEntityID, want: []string{"a", "b", "c"}},
		{name: "label lexicographic", sortBy: SortByLabel, want: []string{"c", "b", "a"}},
		{name: "default preserves input", sortBy: SortByDefault, want: []string{"b", "c", "a"}},
		{name: "unset falls back to value", sortBy: "", want: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := entries()
			sortLayout(es, tt.sortBy)
			got := make([]string, len(es))
			for i, e := range es {
				got[i] = e.item.EntityID
			}
			if !equalStrings(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}
