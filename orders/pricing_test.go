package orders

import (
	"testing"

	"creamery/catalog"
	"creamery/models"
)

func testCatalog() catalog.Catalog {
	return catalog.FromProducts([]models.Product{
		{ID: "GarlicHerb", Name: "Garlic & Herb Butter", Price: 29, Popularity: 2},
		{ID: "HoneySeaSalt", Name: "Honey & Sea Salt Butter", Price: 32, Popularity: 9},
	})
}

func TestRepriceDiscardsClientTotals(t *testing.T) {
	// Client claims a tampered unit price and line total.
	items := []models.OrderItem{
		{ProductID: "GarlicHerb", Name: "Garlic & Herb Butter", Price: 1, Quantity: 2, LineTotal: 2},
	}

	out, total := Reprice(items, testCatalog())
	if len(out) != 1 {
		t.Fatalf("got %d items", len(out))
	}
	if out[0].Price != 29 || out[0].LineTotal != 58 {
		t.Fatalf("catalog price not authoritative: %+v", out[0])
	}
	if total != 58 {
		t.Fatalf("total = %v, want 58", total)
	}
}

func TestRepriceDropsUnknownProducts(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "Margarine", Quantity: 3},
		{ProductID: "HoneySeaSalt", Quantity: 1},
	}

	out, total := Reprice(items, testCatalog())
	if len(out) != 1 || out[0].ProductID != "HoneySeaSalt" {
		t.Fatalf("got %+v", out)
	}
	if total != 32 {
		t.Fatalf("total = %v, want 32", total)
	}
}

func TestRepriceDropsNonPositiveQuantities(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "GarlicHerb", Quantity: 0},
		{ProductID: "GarlicHerb", Quantity: -2},
	}

	out, total := Reprice(items, testCatalog())
	if len(out) != 0 || total != 0 {
		t.Fatalf("got %+v total %v", out, total)
	}
}
