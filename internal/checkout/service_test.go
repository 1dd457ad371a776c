package checkout

import (
	"context"
	"testing"

	"github.com/quickbite-app/quickbite-backend/internal/cart"
	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	"github.com/quickbite-app/quickbite-backend/internal/orders"
	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
	"github.com/quickbite-app/quickbite-backend/pkg/enums"
	"github.com/quickbite-app/quickbite-backend/pkg/types"
	"github.com/shopspring/decimal"
)

func newTestService(t *testing.T) (Service, orders.Repository) {
	t.Helper()
	repo := orders.NewRepository(nil)
	svc, err := NewService(defaultCalculator(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc, repo
}

func seededCart() *cart.Store {
	store := cart.NewStore()
	item := catalog.Item{ID: "101", Name: "Crispy Calamari", Price: decimal.RequireFromString("10.00")}
	store.AddItem(cart.NewLineItem(item, 2, nil, ""))
	return store
}

func TestQuoteComputesSummary(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	store := seededCart()

	summary, err := svc.Quote(context.Background(), store, QuoteInput{
		OrderType: enums.OrderTypeDelivery,
		Tip:       dec("3"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.Subtotal.Equal(dec("20.00")) {
		t.Fatalf("expected subtotal 20.00, got %s", summary.Subtotal)
	}
	if !summary.Total.Equal(dec("28.59")) {
		t.Fatalf("expected total 28.59, got %s", summary.Total)
	}
}

func TestQuoteRejectsUnknownPromo(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Quote(context.Background(), seededCart(), QuoteInput{
		OrderType: enums.OrderTypePickup,
		Tip:       decimal.Zero,
		PromoCode: "BOGUS",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderStoresOrderAndClearsCart(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t)
	store := seededCart()

	order, err := svc.PlaceOrder(context.Background(), store, PlaceOrderInput{
		QuoteInput: QuoteInput{
			OrderType: enums.OrderTypeDelivery,
			Tip:       dec("3"),
			PromoCode: "welcome",
		},
		PaymentMethod: enums.PaymentMethodCard,
		DeliveryAddress: &types.Address{
			Street:  "123 Main St",
			City:    "Foodtown",
			State:   "NY",
			ZipCode: "10001",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if !order.Discount.Equal(dec("5")) {
		t.Fatalf("expected promo discount 5, got %s", order.Discount)
	}
	if !order.Total.Equal(dec("23.59")) {
		t.Fatalf("expected total 23.59, got %s", order.Total)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected one frozen line, got %d", len(order.Items))
	}
	if order.EstimatedDelivery == "" {
		t.Fatal("delivery orders carry an estimate")
	}

	if got := store.ItemCount(); got != 0 {
		t.Fatalf("cart must be cleared after checkout, got count %d", got)
	}

	stored, err := repo.GetByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if !stored.Total.Equal(order.Total) {
		t.Fatalf("stored total mismatch: %s vs %s", stored.Total, order.Total)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), cart.NewStore(), PlaceOrderInput{
		QuoteInput:    QuoteInput{OrderType: enums.OrderTypePickup, Tip: decimal.Zero},
		PaymentMethod: enums.PaymentMethodCOD,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestPlaceOrderDeliveryRequiresAddress(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), seededCart(), PlaceOrderInput{
		QuoteInput:    QuoteInput{OrderType: enums.OrderTypeDelivery, Tip: decimal.Zero},
		PaymentMethod: enums.PaymentMethodCard,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderRejectsBadInputs(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	if _, err := svc.PlaceOrder(context.Background(), seededCart(), PlaceOrderInput{
		QuoteInput:    QuoteInput{OrderType: "drone", Tip: decimal.Zero},
		PaymentMethod: enums.PaymentMethodCard,
	}); err == nil {
		t.Fatal("expected invalid order type to fail")
	}

	if _, err := svc.PlaceOrder(context.Background(), seededCart(), PlaceOrderInput{
		QuoteInput:    QuoteInput{OrderType: enums.OrderTypePickup, Tip: dec("-1")},
		PaymentMethod: enums.PaymentMethodCard,
	}); err == nil {
		t.Fatal("expected negative tip to fail")
	}

	if _, err := svc.PlaceOrder(context.Background(), seededCart(), PlaceOrderInput{
		QuoteInput:    QuoteInput{OrderType: enums.OrderTypePickup, Tip: decimal.Zero},
		PaymentMethod: "check",
	}); err == nil {
		t.Fatal("expected invalid payment method to fail")
	}
}
