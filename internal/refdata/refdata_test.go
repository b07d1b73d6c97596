package refdata

import "testing"

func TestMapSearchURLEncodesLocation(t *testing.T) {
	got := MapSearchURL("淺草寺 雷門")
	want := "https://www.google.com/maps/search/?api=1&query=%E6%B7%BA%E8%8D%89%E5%AF%BA+%E9%9B%B7%E9%96%80"
	if got != want {
		t.Errorf("MapSearchURL = %q, want %q", got, want)
	}
}

func TestCatalogItemCount(t *testing.T) {
	want := 0
	for _, c := range PackingCatalog() {
		want += len(c.Items)
	}
	if got := CatalogItemCount(); got != want || got == 0 {
		t.Errorf("CatalogItemCount = %d, want %d (> 0)", got, want)
	}
}

func TestCatalogItemsUnique(t *testing.T) {
	// Packed flags are keyed by item string; duplicates would alias.
	seen := make(map[string]string)
	for _, c := range PackingCatalog() {
		for _, item := range c.Items {
			if prev, ok := seen[item]; ok {
				t.Errorf("item %q appears in both %s and %s", item, prev, c.ID)
			}
			seen[item] = c.ID
		}
	}
}
