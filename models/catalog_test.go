package models

import "testing"

func TestDedupeCatalogItems(t *testing.T) {
	items := []CatalogItem{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
		{ID: 1, Title: "duplicate of first"},
		{ID: 3, Title: "third"},
		{ID: 2, Title: "duplicate of second"},
	}
	out := DedupeCatalogItems(items)
	if len(out) != 3 {
		t.Fatalf("got %d items, want 3", len(out))
	}
	// First occurrence wins and order is preserved.
	if out[0].ID != 1 || out[0].Title != "first" {
		t.Fatalf("out[0] = %+v", out[0])
	}
	if out[1].ID != 2 || out[1].Title != "second" {
		t.Fatalf("out[1] = %+v", out[1])
	}
	if out[2].ID != 3 {
		t.Fatalf("out[2] = %+v", out[2])
	}
}

func TestDisplayTitle(t *testing.T) {
	if got := (CatalogItem{Title: "Dune", Name: "ignored"}).DisplayTitle(); got != "Dune" {
		t.Fatalf("DisplayTitle = %q", got)
	}
	if got := (CatalogItem{Name: "Squid Game"}).DisplayTitle(); got != "Squid Game" {
		t.Fatalf("DisplayTitle = %q", got)
	}
	if got := (CatalogItem{}).DisplayTitle(); got != "" {
		t.Fatalf("DisplayTitle = %q, want empty", got)
	}
}
