package products

import (
	"context"
	"log"
	"net/http"
	"time"

	"creamery/catalog"
	"creamery/db"
	"creamery/models"
	"creamery/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchAll returns the catalog ordered by ascending popularity value,
// i.e. most popular first.
func FetchAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := db.ProductsCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"popularity": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		list = []models.Product{}
	}
	return list, nil
}

// GetProducts serves the product feed. Optional ?q= filters by name and
// ?sort= reorders (price-asc, price-desc, name, popular).
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := FetchAll(ctx)
	if err != nil {
		log.Println("GetProducts find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		list = catalog.Search(list, q)
	}
	if key := r.URL.Query().Get("sort"); key != "" {
		list = catalog.SortBy(list, key)
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetProduct serves a single product by id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("GetProduct find error:", err)
		http.Error(w, "Could not retrieve product", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetBestSeller serves the most popular product for the homepage card.
func GetBestSeller(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := FetchAll(ctx)
	if err != nil {
		log.Println("GetBestSeller find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}

	best, ok := catalog.MostPopular(list)
	if !ok {
		http.Error(w, "Catalog is empty", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, best)
}

// GetSignature serves the fixed signature-flavor set.
func GetSignature(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := FetchAll(ctx)
	if err != nil {
		log.Println("GetSignature find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, catalog.Signature(catalog.FromProducts(list)))
}
