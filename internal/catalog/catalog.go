package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"padelmania/internal/domain"
)

//go:embed products.json
var bundled []byte

// Data is the static catalog: the sellable products plus the category
// definitions and tag vocabulary the filter panel offers. Loaded once at
// startup and treated as read-only afterwards.
type Data struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
	Tags       []string          `json:"tags"`
}

func Load() (*Data, error) {
	var d Data
	if err := json.Unmarshal(bundled, &d); err != nil {
		return nil, fmt.Errorf("catalog: parse bundled data: %w", err)
	}
	return &d, nil
}

// Find returns the product with the given id, if present.
func (d *Data) Find(id string) (domain.Product, bool) {
	for _, p := range d.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
