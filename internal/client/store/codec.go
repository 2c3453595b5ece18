package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/common"
)

// basicProduct is the persisted v1 shape.
type basicProduct struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Encode serialises the full list in the shape of version v.
func Encode(v models.Version, products []models.Product) (string, error) {
	var (
		b   []byte
		err error
	)
	if v == models.VersionBasic {
		rows := make([]basicProduct, len(products))
		for i, p := range products {
			rows[i] = basicProduct{ID: p.ID, Name: p.Name, Description: p.Description}
		}
		b, err = json.Marshal(rows)
	} else {
		if products == nil {
			products = []models.Product{}
		}
		b, err = json.Marshal(products)
	}
	if err != nil {
		return "", fmt.Errorf("encode products: %w", err)
	}
	return string(b), nil
}

// Decode parses a persisted list. Malformed input yields common.ErrCorruptData;
// a JSON null is an empty list.
func Decode(v models.Version, data string) ([]models.Product, error) {
	if strings.TrimSpace(data) == "null" {
		return []models.Product{}, nil
	}

	if v == models.VersionBasic {
		var rows []basicProduct
		if err := json.Unmarshal([]byte(data), &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrCorruptData, err)
		}
		products := make([]models.Product, len(rows))
		for i, r := range rows {
			products[i] = models.Product{ID: r.ID, Name: r.Name, Description: r.Description}
		}
		return products, nil
	}

	products := []models.Product{}
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptData, err)
	}
	return products, nil
}
