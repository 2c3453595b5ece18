// Package models defines the catalog data model shared by the store, the
// validator and the presentation layer.
package models

// Product is a single catalog record. The v1 model only uses ID, Name and
// Description; v2 adds the remaining fields.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ReleaseDate Date    `json:"releaseDate"`
	Stock       int64   `json:"stock"`
	IsActive    bool    `json:"isActive"`
}

// Categories is the closed set a v2 product category is picked from.
var Categories = []string{
	"Food",
	"Beverage",
	"Snack",
	"Household",
	"Personal Care",
	"Electronics",
	"Stationery",
}

// IsCategory reports whether c belongs to Categories.
func IsCategory(c string) bool {
	for _, x := range Categories {
		if x == c {
			return true
		}
	}
	return false
}
