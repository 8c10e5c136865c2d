package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"creamery/cart"
	"creamery/catalog"
	"creamery/db"
	"creamery/models"
	"creamery/products"
	"creamery/session"
	"creamery/utils"
	"creamery/validate"

	"github.com/julienschmidt/httprouter"
)

// ErrEmptyOrder: the payload carried no lines, or none survived repricing.
var ErrEmptyOrder = errors.New("Your cart is empty.")

// Place validates the payload, reprices it from the catalog and stores
// the order, returning the assigned id. Cart cleanup is the caller's job.
func Place(ctx context.Context, payload models.OrderPayload) (string, error) {
	if len(payload.Items) == 0 {
		return "", ErrEmptyOrder
	}
	if ferr := validate.Customer(payload.Customer); ferr != nil {
		return "", ferr
	}

	list, err := products.FetchAll(ctx)
	if err != nil {
		return "", fmt.Errorf("loading catalog: %w", err)
	}

	// Authoritative totals come from the catalog, never the client.
	items, total := Reprice(payload.Items, catalog.FromProducts(list))
	if len(items) == 0 {
		return "", ErrEmptyOrder
	}

	order := models.Order{
		OrderID:   utils.GenerateRandomDigitString(6),
		Customer:  payload.Customer,
		Items:     items,
		Total:     total,
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("storing order: %w", err)
	}
	return order.OrderID, nil
}

// PlaceOrder accepts a raw order payload over HTTP and clears the
// caller's session cart on success.
func PlaceOrder(carts *cart.Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var payload models.OrderPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			log.Println("PlaceOrder decode error:", err)
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
			return
		}

		orderID, err := Place(ctx, payload)
		if err != nil {
			var ferr *validate.FieldError
			switch {
			case errors.Is(err, ErrEmptyOrder):
				utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			case errors.As(err, &ferr):
				utils.RespondWithError(w, http.StatusBadRequest, ferr.Reason)
			default:
				log.Println("PlaceOrder error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
			}
			return
		}

		if sessionID := session.FromContext(r.Context()); sessionID != "" {
			if err := carts.Clear(ctx, sessionID); err != nil {
				log.Println("PlaceOrder cart cleanup error:", err)
			}
		}

		utils.RespondWithJSON(w, http.StatusCreated, utils.M{
			"success": true,
			"orderId": orderID,
			"message": "Order received",
		})
	}
}

// GetOrder returns a stored order by id.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := fetchOrder(ctx, ps.ByName("orderid"))
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}
