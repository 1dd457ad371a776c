package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/quickbite-app/quickbite-backend/internal/cart"
	"github.com/quickbite-app/quickbite-backend/pkg/enums"
	"github.com/quickbite-app/quickbite-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Order is a placed order with the cart lines and pricing frozen at checkout.
type Order struct {
	ID                uuid.UUID           `json:"id"`
	Items             []cart.LineItem     `json:"items"`
	Status            enums.OrderStatus   `json:"status"`
	OrderType         enums.OrderType     `json:"order_type"`
	DeliveryAddress   *types.Address      `json:"delivery_address,omitempty"`
	DeliveryTime      string              `json:"delivery_time,omitempty"`
	PaymentMethod     enums.PaymentMethod `json:"payment_method"`
	Subtotal          decimal.Decimal     `json:"subtotal"`
	DeliveryFee       decimal.Decimal     `json:"delivery_fee"`
	Tax               decimal.Decimal     `json:"tax"`
	Tip               decimal.Decimal     `json:"tip"`
	Discount          decimal.Decimal     `json:"discount"`
	Total             decimal.Decimal     `json:"total"`
	CreatedAt         time.Time           `json:"created_at"`
	EstimatedDelivery string              `json:"estimated_delivery,omitempty"`
}
