package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quickbite-app/quickbite-backend/api/responses"
	"github.com/quickbite-app/quickbite-backend/api/validators"
	checkoutsvc "github.com/quickbite-app/quickbite-backend/internal/checkout"
	"github.com/quickbite-app/quickbite-backend/internal/sessions"
	"github.com/quickbite-app/quickbite-backend/pkg/enums"
	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
	"github.com/quickbite-app/quickbite-backend/pkg/logger"
	"github.com/quickbite-app/quickbite-backend/pkg/types"
)

type quoteRequest struct {
	OrderType string `json:"order_type" validate:"required,oneof=delivery pickup"`
	Tip       string `json:"tip,omitempty"`
	PromoCode string `json:"promo_code,omitempty"`
}

func (req quoteRequest) toQuoteInput() (checkoutsvc.QuoteInput, error) {
	orderType, err := enums.ParseOrderType(strings.TrimSpace(req.OrderType))
	if err != nil {
		return checkoutsvc.QuoteInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order type")
	}

	tip := decimal.Zero
	if strings.TrimSpace(req.Tip) != "" {
		tip, err = decimal.NewFromString(strings.TrimSpace(req.Tip))
		if err != nil {
			return checkoutsvc.QuoteInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tip amount")
		}
	}

	return checkoutsvc.QuoteInput{
		OrderType: orderType,
		Tip:       tip,
		PromoCode: strings.TrimSpace(req.PromoCode),
	}, nil
}

// CheckoutQuote prices the session's cart without placing an order.
func CheckoutQuote(svc checkoutsvc.Service, registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		store, err := sessionCart(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toQuoteInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Quote(r.Context(), store, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}

type placeOrderRequest struct {
	quoteRequest
	PaymentMethod   string          `json:"payment_method" validate:"required,oneof=card paypal cod"`
	DeliveryAddress *addressRequest `json:"delivery_address,omitempty"`
	DeliveryTime    string          `json:"delivery_time,omitempty"`
}

type addressRequest struct {
	Street       string  `json:"street" validate:"required"`
	Apartment    *string `json:"apartment,omitempty"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required"`
	ZipCode      string  `json:"zip_code" validate:"required"`
	Instructions *string `json:"instructions,omitempty"`
}

func (req placeOrderRequest) toPlaceOrderInput() (checkoutsvc.PlaceOrderInput, error) {
	quote, err := req.toQuoteInput()
	if err != nil {
		return checkoutsvc.PlaceOrderInput{}, err
	}

	paymentMethod, err := enums.ParsePaymentMethod(strings.TrimSpace(req.PaymentMethod))
	if err != nil {
		return checkoutsvc.PlaceOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
	}

	var address *types.Address
	if req.DeliveryAddress != nil {
		address = &types.Address{
			Street:       strings.TrimSpace(req.DeliveryAddress.Street),
			Apartment:    req.DeliveryAddress.Apartment,
			City:         strings.TrimSpace(req.DeliveryAddress.City),
			State:        strings.TrimSpace(req.DeliveryAddress.State),
			ZipCode:      strings.TrimSpace(req.DeliveryAddress.ZipCode),
			Instructions: req.DeliveryAddress.Instructions,
		}
	}

	return checkoutsvc.PlaceOrderInput{
		QuoteInput:      quote,
		PaymentMethod:   paymentMethod,
		DeliveryAddress: address,
		DeliveryTime:    strings.TrimSpace(req.DeliveryTime),
	}, nil
}

// CheckoutPlaceOrder freezes the cart into an order and clears the cart.
func CheckoutPlaceOrder(svc checkoutsvc.Service, registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		store, err := sessionCart(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toPlaceOrderInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), store, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
