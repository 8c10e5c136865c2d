package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"creamery/models"
)

// Number tolerates product feeds that serialize numeric fields as
// either JSON numbers or quoted strings.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("catalog: invalid numeric field %q: %w", s, err)
	}
	*n = Number(f)
	return nil
}

type feedProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Flavor      string `json:"flavor"`
	Description string `json:"description"`
	Price       Number `json:"price"`
	Weight      Number `json:"weight"`
	Image       string `json:"image"`
	Alt         string `json:"alt"`
	Popularity  Number `json:"popularity"`
}

// ParseFeed decodes a raw product feed, coercing numeric fields to
// their proper types.
func ParseFeed(data []byte) ([]models.Product, error) {
	var feed []feedProduct
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("catalog: decoding product feed: %w", err)
	}

	products := make([]models.Product, 0, len(feed))
	for _, fp := range feed {
		products = append(products, models.Product{
			ID:          fp.ID,
			Name:        fp.Name,
			Flavor:      fp.Flavor,
			Description: fp.Description,
			Price:       float64(fp.Price),
			Weight:      int(fp.Weight),
			Image:       fp.Image,
			Alt:         fp.Alt,
			Popularity:  int(fp.Popularity),
		})
	}
	return products, nil
}
