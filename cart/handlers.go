package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"creamery/session"
	"creamery/utils"

	"github.com/julienschmidt/httprouter"
)

type mutatePayload struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// GetCart returns the session's cart together with its derived views.
func GetCart(mgr *Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sessionID := session.FromContext(r.Context())
		c, err := mgr.Load(ctx, sessionID)
		if err != nil {
			log.Println("GetCart load error:", err)
			http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"cart":      c,
			"itemCount": ItemCount(c),
			"total":     OrderTotal(c),
		})
	}
}

// AddToCart inserts a line or increments its quantity by 1.
func AddToCart(mgr *Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var p mutatePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			log.Println("AddToCart decode error:", err)
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		if p.ProductID == "" || p.Name == "" || p.Price < 0 {
			http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
			return
		}

		sessionID := session.FromContext(r.Context())
		c, err := mgr.Add(ctx, sessionID, p.ProductID, p.Name, p.Price)
		if err != nil {
			log.Println("AddToCart save error:", err)
			http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
			return
		}

		utils.RespondWithJSON(w, http.StatusCreated, utils.M{
			"cart":      c,
			"itemCount": ItemCount(c),
			"total":     OrderTotal(c),
		})
	}
}

// RemoveFromCart decrements a line by 1; the line disappears when the
// quantity reaches zero. Unknown productId is a silent no-op.
func RemoveFromCart(mgr *Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var p mutatePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}

		sessionID := session.FromContext(r.Context())
		c, err := mgr.Remove(ctx, sessionID, p.ProductID)
		if err != nil {
			log.Println("RemoveFromCart save error:", err)
			http.Error(w, "Failed to update cart", http.StatusInternalServerError)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"cart":      c,
			"itemCount": ItemCount(c),
			"total":     OrderTotal(c),
		})
	}
}

// DeleteFromCart removes a line entirely regardless of quantity.
func DeleteFromCart(mgr *Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var p mutatePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}

		sessionID := session.FromContext(r.Context())
		c, err := mgr.DeleteLine(ctx, sessionID, p.ProductID)
		if err != nil {
			log.Println("DeleteFromCart save error:", err)
			http.Error(w, "Failed to update cart", http.StatusInternalServerError)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"cart":      c,
			"itemCount": ItemCount(c),
			"total":     OrderTotal(c),
		})
	}
}
