package checkout

import (
	"strings"

	"github.com/quickbite-app/quickbite-backend/pkg/config"
	"github.com/quickbite-app/quickbite-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Summary is the order pricing breakdown shown at checkout:
// total = subtotal + delivery fee + tax + tip - discount.
type Summary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Tip         decimal.Decimal `json:"tip"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

// Calculator applies the configured fee schedule.
type Calculator struct {
	taxRate       decimal.Decimal
	deliveryFee   decimal.Decimal
	promoCode     string
	promoDiscount decimal.Decimal
}

// NewCalculator builds a calculator from the pricing config.
func NewCalculator(cfg config.PricingConfig) *Calculator {
	return &Calculator{
		taxRate:       cfg.TaxRate,
		deliveryFee:   cfg.DeliveryFee,
		promoCode:     strings.ToUpper(strings.TrimSpace(cfg.PromoCode)),
		promoDiscount: cfg.PromoDiscount,
	}
}

// PromoApplies reports whether the supplied code matches the recognized
// literal. Matching ignores case and surrounding whitespace.
func (c *Calculator) PromoApplies(code string) bool {
	return strings.ToUpper(strings.TrimSpace(code)) == c.promoCode
}

// Summarize computes the pricing breakdown. The delivery fee applies to
// delivery orders only; tax is a fixed share of the subtotal, rounded to
// cents; the promo discount is a flat amount applied at most once.
func (c *Calculator) Summarize(subtotal decimal.Decimal, orderType enums.OrderType, tip decimal.Decimal, promoApplied bool) Summary {
	fee := decimal.Zero
	if orderType == enums.OrderTypeDelivery {
		fee = c.deliveryFee
	}

	tax := subtotal.Mul(c.taxRate).Round(2)

	discount := decimal.Zero
	if promoApplied {
		discount = c.promoDiscount
	}

	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Tip:         tip,
		Discount:    discount,
		Total:       subtotal.Add(fee).Add(tax).Add(tip).Sub(discount),
	}
}
