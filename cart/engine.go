package cart

import "creamery/models"

// Pure cart operations. Every function takes the current cart and
// returns the next cart without mutating its input; persistence and
// change notification belong to the Manager.

func clone(c models.Cart) models.Cart {
	next := make(models.Cart, len(c)+1)
	for id, line := range c {
		next[id] = line
	}
	return next
}

// Add inserts a new line with quantity 1, or increments an existing
// line by 1. There is no upper bound on quantity.
func Add(c models.Cart, productID, name string, price float64) models.Cart {
	next := clone(c)
	line, ok := next[productID]
	if !ok {
		next[productID] = models.CartLine{Name: name, Price: price, Quantity: 1}
		return next
	}
	line.Quantity++
	next[productID] = line
	return next
}

// Remove decrements a line by 1 and deletes it once the quantity would
// reach zero. Unknown productID is a no-op.
func Remove(c models.Cart, productID string) models.Cart {
	line, ok := c[productID]
	if !ok {
		return c
	}
	next := clone(c)
	line.Quantity--
	if line.Quantity <= 0 {
		delete(next, productID)
		return next
	}
	next[productID] = line
	return next
}

// DeleteLine removes the line entirely regardless of quantity.
func DeleteLine(c models.Cart, productID string) models.Cart {
	if _, ok := c[productID]; !ok {
		return c
	}
	next := clone(c)
	delete(next, productID)
	return next
}

// ItemCount is the sum of all quantities; 0 for an empty cart.
func ItemCount(c models.Cart) int {
	total := 0
	for _, line := range c {
		total += line.Quantity
	}
	return total
}

// LineTotal is price x quantity for a single line.
func LineTotal(line models.CartLine) float64 {
	return line.Price * float64(line.Quantity)
}

// OrderTotal is the sum of LineTotal over all lines; 0 for an empty cart.
func OrderTotal(c models.Cart) float64 {
	total := 0.0
	for _, line := range c {
		total += LineTotal(line)
	}
	return total
}
