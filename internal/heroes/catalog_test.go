package heroes

import "testing"

func TestDefaultCatalogSupportsLargestDraft(t *testing.T) {
	c := Default()
	all := c.FilterByExpansions(nil)
	// Single-mode drafting deals three options to each of up to ten players.
	if len(all) < 30 {
		t.Fatalf("catalog too small for a 10-player single draft: %d heroes", len(all))
	}

	seen := map[string]bool{}
	for _, h := range all {
		if h.ID == "" || h.Name == "" || h.Expansion == "" {
			t.Fatalf("incomplete hero entry: %+v", h)
		}
		if seen[h.ID] {
			t.Fatalf("duplicate hero id %q", h.ID)
		}
		seen[h.ID] = true
		if h.Complexity < 1 || h.Complexity > 4 {
			t.Fatalf("hero %s has complexity %d", h.ID, h.Complexity)
		}
	}
}

func TestFilterByExpansions(t *testing.T) {
	c := Default()

	base := c.FilterByExpansions([]string{ExpansionBase})
	if len(base) == 0 {
		t.Fatalf("base filter returned nothing")
	}
	for _, h := range base {
		if h.Expansion != ExpansionBase {
			t.Fatalf("hero %s leaked through the filter", h.ID)
		}
	}

	if got := c.FilterByExpansions([]string{"Nonexistent"}); len(got) != 0 {
		t.Fatalf("unknown expansion should filter everything, got %d", len(got))
	}
}

func TestAllExpansionsBaseFirst(t *testing.T) {
	exps := Default().AllExpansions()
	if len(exps) != 3 {
		t.Fatalf("want 3 expansions, got %v", exps)
	}
	if exps[0] != ExpansionBase {
		t.Fatalf("base should sort first, got %v", exps)
	}
}
