package order

import (
	"time"

	"deliverus-client/internal/restaurant"

	"github.com/shopspring/decimal"
)

// Wire shapes. The backend nests the join-table attributes (quantity and
// frozen unit price) under "OrderProducts" on every ordered product.
type orderProductDTO struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	Price         decimal.Decimal `json:"price"`
	OrderProducts struct {
		Quantity   int              `json:"quantity"`
		UnityPrice *decimal.Decimal `json:"unityPrice"`
	} `json:"OrderProducts"`
}

type orderDTO struct {
	ID            uint                   `json:"id"`
	CreatedAt     time.Time              `json:"createdAt"`
	StartedAt     *time.Time             `json:"startedAt"`
	SentAt        *time.Time             `json:"sentAt"`
	DeliveredAt   *time.Time             `json:"deliveredAt"`
	Address       string                 `json:"address"`
	Price         decimal.Decimal        `json:"price"`
	ShippingCosts decimal.Decimal        `json:"shippingCosts"`
	Status        string                 `json:"status"`
	Restaurant    *restaurant.Restaurant `json:"restaurant"`
	Products      []orderProductDTO      `json:"products"`
}

func toOrderProduct(dto orderProductDTO) OrderProduct {
	price := dto.Price
	// Prefer the price frozen at order time when the backend sends it.
	if dto.OrderProducts.UnityPrice != nil {
		price = *dto.OrderProducts.UnityPrice
	}
	return OrderProduct{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Image:       dto.Image,
		Price:       price,
		Quantity:    dto.OrderProducts.Quantity,
	}
}

func toOrder(dto *orderDTO) *Order {
	if dto == nil {
		return nil
	}

	products := make([]OrderProduct, 0, len(dto.Products))
	for _, p := range dto.Products {
		products = append(products, toOrderProduct(p))
	}

	return &Order{
		ID:            dto.ID,
		CreatedAt:     dto.CreatedAt,
		StartedAt:     dto.StartedAt,
		SentAt:        dto.SentAt,
		DeliveredAt:   dto.DeliveredAt,
		Address:       dto.Address,
		Price:         dto.Price,
		ShippingCosts: dto.ShippingCosts,
		Status:        OrderStatus(dto.Status),
		Restaurant:    dto.Restaurant,
		Products:      products,
	}
}
