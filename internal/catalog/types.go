package catalog

import (
	"time"

	"github.com/quickbite-app/quickbite-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Choice is one selectable customization inside an OptionGroup. Price is the
// delta added on top of the item's unit price when the choice is selected.
type Choice struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OptionGroup is a named set of customization choices for an item. When
// Required is set and MultiSelect is not, exactly one choice must be selected.
type OptionGroup struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Choices     []Choice `json:"choices"`
	Required    bool     `json:"required"`
	MultiSelect bool     `json:"multi_select"`
}

// FindChoice returns the choice with the given id, if present.
func (g OptionGroup) FindChoice(choiceID string) (Choice, bool) {
	for _, choice := range g.Choices {
		if choice.ID == choiceID {
			return choice, true
		}
	}
	return Choice{}, false
}

// Nutrition holds the per-serving values shown on the item detail page.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Item is an orderable menu entry.
type Item struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	CategoryID   string          `json:"category_id"`
	IsPopular    bool            `json:"is_popular,omitempty"`
	IsVegetarian bool            `json:"is_vegetarian,omitempty"`
	IsSpicy      bool            `json:"is_spicy,omitempty"`
	Allergens    []string        `json:"allergens,omitempty"`
	Nutrition    *Nutrition      `json:"nutrition,omitempty"`
	Options      []OptionGroup   `json:"options,omitempty"`
}

// FindOption returns the option group with the given id, if present.
func (i Item) FindOption(optionID string) (OptionGroup, bool) {
	for _, group := range i.Options {
		if group.ID == optionID {
			return group, true
		}
	}
	return OptionGroup{}, false
}

// Category groups menu items for browsing.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Promotion is a marketing banner with an attached promo code.
type Promotion struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"image_url"`
	Discount     decimal.Decimal    `json:"discount"`
	DiscountType enums.DiscountType `json:"discount_type"`
	Code         string             `json:"code"`
	ValidUntil   time.Time          `json:"valid_until"`
}
