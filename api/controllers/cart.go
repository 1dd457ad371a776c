package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickbite-app/quickbite-backend/api/middleware"
	"github.com/quickbite-app/quickbite-backend/api/responses"
	"github.com/quickbite-app/quickbite-backend/api/validators"
	cartstore "github.com/quickbite-app/quickbite-backend/internal/cart"
	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	"github.com/quickbite-app/quickbite-backend/internal/sessions"
	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
	"github.com/quickbite-app/quickbite-backend/pkg/logger"
)

type cartView struct {
	Items     []cartstore.LineItem `json:"items"`
	Subtotal  decimal.Decimal      `json:"subtotal"`
	ItemCount int                  `json:"item_count"`
}

func newCartView(store *cartstore.Store) cartView {
	return cartView{
		Items:     store.Items(),
		Subtotal:  store.CartTotal(),
		ItemCount: store.ItemCount(),
	}
}

func sessionCart(r *http.Request, registry *sessions.Registry) (*cartstore.Store, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return registry.Cart(sessionID), nil
}

// CartFetch returns the session's current cart.
func CartFetch(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		store, err := sessionCart(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}

type addCartItemRequest struct {
	MenuItemID          string                  `json:"menu_item_id" validate:"required"`
	Quantity            int                     `json:"quantity" validate:"required,min=1"`
	SelectedOptions     []selectedOptionRequest `json:"selected_options,omitempty" validate:"omitempty,dive"`
	SpecialInstructions string                  `json:"special_instructions,omitempty" validate:"omitempty,max=500"`
}

type selectedOptionRequest struct {
	OptionID  string   `json:"option_id" validate:"required"`
	ChoiceIDs []string `json:"choice_ids" validate:"required,min=1,dive,required"`
}

func (req addCartItemRequest) selections() []cartstore.SelectedOption {
	selections := make([]cartstore.SelectedOption, 0, len(req.SelectedOptions))
	for _, sel := range req.SelectedOptions {
		selections = append(selections, cartstore.SelectedOption{
			OptionID:  sel.OptionID,
			ChoiceIDs: sel.ChoiceIDs,
		})
	}
	return selections
}

// CartAddItem snapshots the menu item, validates the option selections, and
// adds the priced line to the session's cart.
func CartAddItem(registry *sessions.Registry, menu catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil || menu == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		store, err := sessionCart(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := menu.GetItem(r.Context(), strings.TrimSpace(payload.MenuItemID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		selections := payload.selections()
		if err := cartstore.ValidateSelections(*item, selections); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		line := cartstore.NewLineItem(*item, payload.Quantity, selections, strings.TrimSpace(payload.SpecialInstructions))
		store.AddItem(line)

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(store))
	}
}

type updateCartItemRequest struct {
	// Quantity bounds are enforced by the cart store so that zero and
	// negative values surface as INVALID_QUANTITY rather than a generic
	// validation failure.
	Quantity int `json:"quantity"`
}

// CartUpdateItem changes the quantity of one cart line.
func CartUpdateItem(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		store, err := sessionCart(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lineItemID, err := lineItemIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.UpdateQuantity(lineItemID, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartRemoveItem drops one cart line. Removing an id that is not in the cart
// leaves it unchanged.
func CartRemoveItem(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		store, err := sessionCart(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lineItemID, err := lineItemIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.RemoveItem(lineItemID)

		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartClear empties the session's cart.
func CartClear(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart registry unavailable"))
			return
		}

		store, err := sessionCart(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear()

		responses.WriteSuccess(w, newCartView(store))
	}
}

func lineItemIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "lineItemID")
	lineItemID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid line item id")
	}
	return lineItemID, nil
}
