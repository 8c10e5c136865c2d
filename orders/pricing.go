package orders

import (
	"creamery/catalog"
	"creamery/models"
)

// Reprice rebuilds every line from the catalog's unit prices, discarding
// whatever prices and totals the client declared. Lines referencing a
// productId the catalog does not carry are dropped silently.
func Reprice(items []models.OrderItem, cat catalog.Catalog) ([]models.OrderItem, float64) {
	out := make([]models.OrderItem, 0, len(items))
	total := 0.0

	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		product, ok := cat[item.ProductID]
		if !ok {
			continue
		}
		line := models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			LineTotal: product.Price * float64(item.Quantity),
		}
		total += line.LineTotal
		out = append(out, line)
	}
	return out, total
}
