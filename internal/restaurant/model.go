package restaurant

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is one menu entry. Immutable once fetched for a screen session.
type Product struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	Availability *bool           `json:"availability,omitempty"`
}

type Category struct {
	Name string `json:"name"`
}

// Restaurant with its menu: Products come back in the backend's order and
// the client never reorders them.
type Restaurant struct {
	ID                    uint            `json:"id"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	Address               string          `json:"address"`
	Logo                  string          `json:"logo"`
	HeroImage             string          `json:"heroImage"`
	ShippingCosts         decimal.Decimal `json:"shippingCosts"`
	AverageServiceMinutes *int            `json:"averageServiceMinutes"`
	Status                string          `json:"status"`
	RestaurantCategory    *Category       `json:"restaurantCategory"`
	Products              []Product       `json:"products"`
}

func (r *Restaurant) CategoryName() string {
	if r.RestaurantCategory == nil {
		return ""
	}
	return r.RestaurantCategory.Name
}

// ImageURL resolves a backend-relative image reference against the API base
// URL. Empty references stay empty so callers can fall back to a placeholder.
func ImageURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
