package products

import (
	"context"
	"fmt"
	"log"

	"creamery/catalog"
	"creamery/db"

	"go.mongodb.org/mongo-driver/bson"
)

// seedFeed is the stock product feed. It keeps the upstream feed's
// habit of quoting numeric fields, which the catalog parser coerces.
const seedFeed = `[
  {"id": "GarlicHerb", "name": "Garlic & Herb Butter",
   "flavor": "Fresh garlic, parsley & thyme",
   "description": "A classic savory butter, perfect for bread, pasta and roasted veggies.",
   "price": "29", "weight": "150", "popularity": 2,
   "image": "Images/GarlicHerbButter.png", "alt": "Garlic and herb flavored butter"},
  {"id": "HoneySeaSalt", "name": "Honey & Sea Salt Butter",
   "flavor": "Wild honey & sea salt crystals",
   "description": "Soft, sweet and slightly salty – perfect for brunch and desserts.",
   "price": "32", "weight": "150", "popularity": 9,
   "image": "Images/HoneySaltButter.png", "alt": "Honey and sea salt flavored butter"},
  {"id": "SmokedPaprika", "name": "Smoked Paprika Butter",
   "flavor": "Smoked paprika & roasted garlic",
   "description": "Rich and smoky flavor that upgrades any grilled dish or steak.",
   "price": "31", "weight": "150", "popularity": 3,
   "image": "Images/PaprikaButter.png", "alt": "Smoked paprika flavored butter"},
  {"id": "LemonDill", "name": "Lemon & Dill Butter",
   "flavor": "Lemon zest & fresh dill",
   "description": "Bright and fresh, ideal for fish, veggies and light dishes.",
   "price": "30", "weight": "150", "popularity": 4,
   "image": "Images/LemonDillButter.png", "alt": "Lemon and dill flavored butter"},
  {"id": "ChiliAnchovy", "name": "Chili & Anchovy Butter",
   "flavor": "Chili flakes, anchovy & herbs",
   "description": "A bold, umami-packed butter with a spicy kick—amazing on pasta, toast and grilled fish.",
   "price": 34, "weight": 150, "popularity": 5,
   "image": "Images/ChiliAnchovyButter.png", "alt": "Chili and anchovy flavored butter slices on a wooden board"},
  {"id": "CaramelizedOnion", "name": "Caramelized Onion Butter",
   "flavor": "Slow-cooked caramelized onions",
   "description": "Sweet and savory butter with rich onion depth—perfect for steaks, burgers, mashed potatoes and toast.",
   "price": 33, "weight": 150, "popularity": 6,
   "image": "Images/CaramelizedOnionButter.png", "alt": "Caramelized onion flavored butter slices on a wooden board"},
  {"id": "BrownButterCinnamonVanilla", "name": "Brown Butter with Cinnamon, Vanilla & Brown Sugar",
   "flavor": "Brown butter, cinnamon, vanilla & brown sugar",
   "description": "Warm, nutty and dessert-ready—spread on pancakes, waffles, banana bread or warm brioche.",
   "price": 35, "weight": 150, "popularity": 7,
   "image": "Images/BrownButterCinnamonVanilla.png", "alt": "Brown butter with cinnamon and vanilla slices on a wooden board"}
]`

// SeedIfEmpty loads the stock butters into the products collection on
// first start.
func SeedIfEmpty(ctx context.Context) error {
	count, err := db.ProductsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return Reseed(ctx)
}

// Reseed drops every product and inserts the stock feed again.
func Reseed(ctx context.Context) error {
	list, err := catalog.ParseFeed([]byte(seedFeed))
	if err != nil {
		return fmt.Errorf("parsing seed feed: %w", err)
	}

	if _, err := db.ProductsCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]interface{}, 0, len(list))
	for _, p := range list {
		docs = append(docs, p)
	}
	if _, err := db.ProductsCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Seeded %d products", len(docs))
	return nil
}
