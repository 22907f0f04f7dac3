package seed

import "testing"

func TestFixtures(t *testing.T) {
	careers := CareerNames()
	if len(careers) != 12 {
		t.Fatalf("careers=%d want 12", len(careers))
	}
	seen := map[string]bool{}
	for _, name := range careers {
		if seen[name] {
			t.Fatalf("duplicate career %q", name)
		}
		seen[name] = true
	}

	categories := Categories()
	if len(categories) != 3 {
		t.Fatalf("categories=%d want 3", len(categories))
	}
	for _, c := range categories {
		if c.Name == "" || c.Description == "" || c.ImageURL == "" {
			t.Fatalf("incomplete category fixture: %+v", c)
		}
	}
}
