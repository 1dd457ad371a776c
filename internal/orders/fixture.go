package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quickbite-app/quickbite-backend/internal/cart"
	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	"github.com/quickbite-app/quickbite-backend/pkg/enums"
	"github.com/quickbite-app/quickbite-backend/pkg/types"
	"github.com/shopspring/decimal"
)

var fixtureAddress = types.Address{
	Street:    "123 Main St",
	Apartment: strPtr("Apt 4B"),
	City:      "Foodtown",
	State:     "NY",
	ZipCode:   "10001",
}

// FixtureOrders returns the demo order history shown before any real order is
// placed. Line snapshots are resolved against the catalog so names and unit
// prices stay consistent with the menu.
func FixtureOrders(menu catalog.Repository) []Order {
	return []Order{
		{
			ID:     uuid.MustParse("91f4a44a-6f5a-4ae8-bd27-1a9a87bb0001"),
			Status: enums.OrderStatusDelivered,
			Items: []cart.LineItem{
				fixtureLine(menu, "201", 1),
				fixtureLine(menu, "301", 1),
			},
			OrderType:       enums.OrderTypeDelivery,
			DeliveryAddress: &fixtureAddress,
			PaymentMethod:   enums.PaymentMethodCard,
			Subtotal:        decimal.RequireFromString("35.98"),
			DeliveryFee:     decimal.RequireFromString("0"),
			Tax:             decimal.RequireFromString("2.99"),
			Tip:             decimal.RequireFromString("0"),
			Discount:        decimal.RequireFromString("0"),
			Total:           decimal.RequireFromString("38.97"),
			CreatedAt:       time.Date(2025, time.May, 20, 18, 30, 0, 0, time.UTC),
		},
		{
			ID:     uuid.MustParse("91f4a44a-6f5a-4ae8-bd27-1a9a87bb0002"),
			Status: enums.OrderStatusDelivered,
			Items: []cart.LineItem{
				fixtureLine(menu, "202", 1),
				fixtureLine(menu, "102", 1),
				fixtureLine(menu, "501", 2),
			},
			OrderType:       enums.OrderTypeDelivery,
			DeliveryAddress: &fixtureAddress,
			PaymentMethod:   enums.PaymentMethodCard,
			Subtotal:        decimal.RequireFromString("38.96"),
			DeliveryFee:     decimal.RequireFromString("0"),
			Tax:             decimal.RequireFromString("3.99"),
			Tip:             decimal.RequireFromString("0"),
			Discount:        decimal.RequireFromString("0"),
			Total:           decimal.RequireFromString("42.95"),
			CreatedAt:       time.Date(2025, time.May, 18, 19, 45, 0, 0, time.UTC),
		},
		{
			ID:     uuid.MustParse("91f4a44a-6f5a-4ae8-bd27-1a9a87bb0003"),
			Status: enums.OrderStatusInDelivery,
			Items: []cart.LineItem{
				fixtureLine(menu, "101", 1),
				fixtureLine(menu, "401", 2),
			},
			OrderType:         enums.OrderTypeDelivery,
			DeliveryAddress:   &fixtureAddress,
			PaymentMethod:     enums.PaymentMethodCard,
			Subtotal:          decimal.RequireFromString("30.97"),
			DeliveryFee:       decimal.RequireFromString("0"),
			Tax:               decimal.RequireFromString("0"),
			Tip:               decimal.RequireFromString("0"),
			Discount:          decimal.RequireFromString("0"),
			Total:             decimal.RequireFromString("30.97"),
			CreatedAt:         time.Now().UTC(),
			EstimatedDelivery: "25-35 min",
		},
	}
}

func fixtureLine(menu catalog.Repository, itemID string, quantity int) cart.LineItem {
	item, err := menu.GetItem(context.Background(), itemID)
	if err != nil {
		// fixture references only seeded menu ids
		panic(err)
	}
	return cart.NewLineItem(*item, quantity, nil, "")
}

func strPtr(value string) *string {
	return &value
}
