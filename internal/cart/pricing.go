package cart

import (
	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// LineTotal computes the add-time price for a candidate line:
// unit price times quantity, plus every selected choice delta times quantity.
// Selections referencing unknown groups or choices contribute nothing; callers
// validate selections before pricing.
func LineTotal(item catalog.Item, quantity int, selections []SelectedOption) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))
	total := item.Price.Mul(qty)
	for _, selection := range selections {
		group, ok := item.FindOption(selection.OptionID)
		if !ok {
			continue
		}
		for _, choiceID := range selection.ChoiceIDs {
			choice, ok := group.FindChoice(choiceID)
			if !ok {
				continue
			}
			total = total.Add(choice.Price.Mul(qty))
		}
	}
	return total
}
