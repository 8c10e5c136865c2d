package models

import "time"

// Product is one purchasable butter in the catalog. Loaded once per
// session from the product feed and never mutated afterwards.
type Product struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Flavor      string  `json:"flavor" bson:"flavor"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Weight      int     `json:"weight" bson:"weight"` // grams
	Image       string  `json:"image" bson:"image"`
	Alt         string  `json:"alt" bson:"alt"`
	Popularity  int     `json:"popularity" bson:"popularity"` // lower = more popular
}

// CartLine is one product's entry in the cart. A line with quantity <= 0
// is never stored; it is removed from the cart instead.
type CartLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart maps productId -> CartLine. Owned by a single guest session and
// persisted as one serialized blob.
type Cart map[string]CartLine

// Customer holds the contact fields collected at checkout.
type Customer struct {
	FullName string `json:"full_name" bson:"fullName"`
	Phone    string `json:"phone" bson:"phone"`
	Email    string `json:"email" bson:"email"`
	City     string `json:"city" bson:"city"`
	Address  string `json:"address" bson:"address"`
	Zip      string `json:"zip,omitempty" bson:"zip,omitempty"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// OrderItem is one priced line of a submitted order.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	LineTotal float64 `json:"lineTotal" bson:"lineTotal"`
}

// OrderPayload is the immutable snapshot of cart + customer data sent
// for fulfillment. A fresh submission builds a fresh payload.
type OrderPayload struct {
	Customer  Customer    `json:"customer" bson:"customer"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
}

// Order is a finalized, stored order.
type Order struct {
	OrderID   string      `json:"orderId" bson:"orderId"`
	Customer  Customer    `json:"customer" bson:"customer"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	Status    string      `json:"status" bson:"status"` // e.g. "pending", "completed"
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
}

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	TicketID  string    `json:"ticketId" bson:"ticketId"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
