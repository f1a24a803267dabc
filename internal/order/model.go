package order

import (
	"time"

	"deliverus-client/internal/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus values are owned by the backend; the client treats them as
// opaque strings and only renders them.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusInProcess OrderStatus = "in process"
	StatusSent      OrderStatus = "sent"
	StatusDelivered OrderStatus = "delivered"
)

// OrderProduct is a product line of a confirmed order, with the unit price
// frozen at order time. Never recomputed from current menu prices.
type OrderProduct struct {
	ID          uint
	Name        string
	Description string
	Image       string
	Price       decimal.Decimal
	Quantity    int
}

// LineTotal is frozen unit price times ordered quantity.
func (p OrderProduct) LineTotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Order is a server-confirmed order, immutable from the client's side.
type Order struct {
	ID            uint
	CreatedAt     time.Time
	StartedAt     *time.Time
	SentAt        *time.Time
	DeliveredAt   *time.Time
	Address       string
	Price         decimal.Decimal
	ShippingCosts decimal.Decimal
	Status        OrderStatus
	Restaurant    *restaurant.Restaurant
	Products      []OrderProduct
}

// Line is one derived product line of an order under construction: always a
// pure function of the current menu price and quantity, never cached.
type Line struct {
	Product   restaurant.Product
	Quantity  int
	LinePrice decimal.Decimal
}

// Draft is an unsubmitted order held locally for one checkout flow. It is
// created when the user confirms their selection and destroyed on successful
// submission or discard.
type Draft struct {
	ID            uuid.UUID
	RestaurantID  uint
	Address       string
	Lines         []Line
	Subtotal      decimal.Decimal
	ShippingCosts decimal.Decimal
	Total         decimal.Decimal
}

// CreateOrderProduct is the wire shape of one draft line.
type CreateOrderProduct struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderPayload is the POST /orders request body.
type CreateOrderPayload struct {
	Address      string               `json:"address"`
	RestaurantID uint                 `json:"restaurantId"`
	Products     []CreateOrderProduct `json:"products"`
}

// Payload flattens the draft into the backend's create-order shape.
func (d *Draft) Payload() CreateOrderPayload {
	products := make([]CreateOrderProduct, 0, len(d.Lines))
	for _, line := range d.Lines {
		products = append(products, CreateOrderProduct{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}
	return CreateOrderPayload{
		Address:      d.Address,
		RestaurantID: d.RestaurantID,
		Products:     products,
	}
}
