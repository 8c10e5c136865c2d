package products

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"creamery/db"
	"creamery/models"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const maxThumbWidth = 1200

func staticDir() string {
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		return dir
	}
	return "static"
}

// GetProductImage serves a product photo, optionally resized with ?w=.
func GetProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := db.ProductsCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	path := filepath.Join(staticDir(), filepath.Clean("/"+product.Image))
	width, _ := strconv.Atoi(r.URL.Query().Get("w"))

	if width <= 0 {
		http.ServeFile(w, r, path)
		return
	}
	if width > maxThumbWidth {
		width = maxThumbWidth
	}

	img, err := imaging.Open(path)
	if err != nil {
		log.Println("GetProductImage open error:", err)
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := imaging.Encode(w, thumb, imaging.PNG); err != nil {
		log.Println("GetProductImage encode error:", err)
	}
}
