package admin

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"creamery/notify"
	"creamery/products"
	"creamery/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

func authorized(r *http.Request) bool {
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		return false
	}
	_, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) == nil
}

// Reseed drops the catalog and loads the stock product set again, then
// tells every connected view the catalog changed.
func Reseed(hub *notify.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if !authorized(r) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		if err := products.Reseed(ctx); err != nil {
			log.Println("Reseed error:", err)
			http.Error(w, "Reseed failed", http.StatusInternalServerError)
			return
		}

		hub.CatalogChanged()
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
	}
}
