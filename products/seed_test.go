package products

import (
	"testing"

	"creamery/catalog"
)

func TestSeedFeedParses(t *testing.T) {
	list, err := catalog.ParseFeed([]byte(seedFeed))
	if err != nil {
		t.Fatalf("ParseFeed: %v", err)
	}
	if len(list) != 7 {
		t.Fatalf("got %d products, want 7", len(list))
	}

	byID := catalog.FromProducts(list)

	// Quoted numeric fields must coerce to real numbers.
	if p := byID["GarlicHerb"]; p.Price != 29 || p.Weight != 150 || p.Popularity != 2 {
		t.Fatalf("GarlicHerb = %+v", p)
	}
	if p := byID["ChiliAnchovy"]; p.Price != 34 || p.Weight != 150 {
		t.Fatalf("ChiliAnchovy = %+v", p)
	}

	for _, p := range list {
		if p.ID == "" || p.Name == "" || p.Price <= 0 || p.Weight <= 0 {
			t.Fatalf("incomplete seed product: %+v", p)
		}
	}
}
