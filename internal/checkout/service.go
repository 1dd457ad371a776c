package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quickbite-app/quickbite-backend/internal/cart"
	"github.com/quickbite-app/quickbite-backend/internal/orders"
	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
	"github.com/quickbite-app/quickbite-backend/pkg/enums"
	"github.com/quickbite-app/quickbite-backend/pkg/types"
	"github.com/shopspring/decimal"
)

const defaultDeliveryEstimate = "25-35 min"

// Service prices and places orders against a session's cart.
type Service interface {
	Quote(ctx context.Context, store *cart.Store, input QuoteInput) (Summary, error)
	PlaceOrder(ctx context.Context, store *cart.Store, input PlaceOrderInput) (*orders.Order, error)
}

// QuoteInput carries the checkout selections that affect pricing.
type QuoteInput struct {
	OrderType enums.OrderType
	Tip       decimal.Decimal
	PromoCode string
}

// PlaceOrderInput extends the quote with the data frozen onto the order.
type PlaceOrderInput struct {
	QuoteInput
	PaymentMethod   enums.PaymentMethod
	DeliveryAddress *types.Address
	DeliveryTime    string
}

type service struct {
	calc       *Calculator
	ordersRepo orders.Repository
	now        func() time.Time
}

// NewService builds the checkout service.
func NewService(calc *Calculator, ordersRepo orders.Repository) (Service, error) {
	if calc == nil {
		return nil, fmt.Errorf("calculator required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{
		calc:       calc,
		ordersRepo: ordersRepo,
		now:        time.Now,
	}, nil
}

// Quote prices the current cart without mutating it.
func (s *service) Quote(ctx context.Context, store *cart.Store, input QuoteInput) (Summary, error) {
	if store == nil {
		return Summary{}, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable")
	}
	if err := validateQuoteInput(input); err != nil {
		return Summary{}, err
	}

	promoApplied := input.PromoCode != "" && s.calc.PromoApplies(input.PromoCode)
	if input.PromoCode != "" && !promoApplied {
		return Summary{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid promo code")
	}

	return s.calc.Summarize(store.CartTotal(), input.OrderType, input.Tip, promoApplied), nil
}

// PlaceOrder freezes the cart into a pending order, stores it, and clears the
// cart. Payment is simulated; nothing leaves the process.
func (s *service) PlaceOrder(ctx context.Context, store *cart.Store, input PlaceOrderInput) (*orders.Order, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable")
	}
	if err := validateQuoteInput(input.QuoteInput); err != nil {
		return nil, err
	}
	if !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}
	if input.OrderType == enums.OrderTypeDelivery {
		if input.DeliveryAddress == nil || input.DeliveryAddress.IsZero() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address required")
		}
	}

	items := store.Items()
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	summary, err := s.Quote(ctx, store, input.QuoteInput)
	if err != nil {
		return nil, err
	}

	order := &orders.Order{
		ID:              uuid.New(),
		Items:           items,
		Status:          enums.OrderStatusPending,
		OrderType:       input.OrderType,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryTime:    input.DeliveryTime,
		PaymentMethod:   input.PaymentMethod,
		Subtotal:        summary.Subtotal,
		DeliveryFee:     summary.DeliveryFee,
		Tax:             summary.Tax,
		Tip:             summary.Tip,
		Discount:        summary.Discount,
		Total:           summary.Total,
		CreatedAt:       s.now().UTC(),
	}
	if input.OrderType == enums.OrderTypeDelivery {
		order.EstimatedDelivery = defaultDeliveryEstimate
	}

	saved, err := s.ordersRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	store.Clear()
	return saved, nil
}

func validateQuoteInput(input QuoteInput) error {
	if !input.OrderType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order type")
	}
	if input.Tip.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "tip cannot be negative")
	}
	return nil
}
