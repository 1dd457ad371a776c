package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
	"go.uber.org/multierr"
)

// ListFilter narrows ListItems results. Zero value lists everything.
type ListFilter struct {
	CategoryID string
	Search     string
	Popular    bool
}

// Repository provides read-only access to the menu catalog.
type Repository interface {
	GetItem(ctx context.Context, id string) (*Item, error)
	ListItems(ctx context.Context, filter ListFilter) ([]Item, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListPromotions(ctx context.Context) ([]Promotion, error)
	FindPromotionByCode(ctx context.Context, code string) (*Promotion, error)
}

type repository struct {
	items       []Item
	itemsByID   map[string]int
	categories  []Category
	promotions  []Promotion
	promoByCode map[string]int
}

// NewRepository indexes the provided fixture and validates its internal
// references. The data is never mutated after construction.
func NewRepository(items []Item, categories []Category, promotions []Promotion) (Repository, error) {
	repo := &repository{
		items:       items,
		itemsByID:   make(map[string]int, len(items)),
		categories:  categories,
		promotions:  promotions,
		promoByCode: make(map[string]int, len(promotions)),
	}

	categoryIDs := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		categoryIDs[category.ID] = struct{}{}
	}

	var err error
	for idx, item := range items {
		if _, dup := repo.itemsByID[item.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("item %s: duplicate id", item.ID))
			continue
		}
		repo.itemsByID[item.ID] = idx
		err = multierr.Append(err, validateItem(item, categoryIDs))
	}
	for idx, promo := range promotions {
		code := normalizeCode(promo.Code)
		if code == "" {
			err = multierr.Append(err, fmt.Errorf("promotion %s: missing code", promo.ID))
			continue
		}
		if _, dup := repo.promoByCode[code]; dup {
			err = multierr.Append(err, fmt.Errorf("promotion %s: duplicate code %s", promo.ID, code))
			continue
		}
		repo.promoByCode[code] = idx
	}

	if err != nil {
		return nil, fmt.Errorf("catalog fixture invalid: %w", err)
	}
	return repo, nil
}

func validateItem(item Item, categoryIDs map[string]struct{}) error {
	var err error
	if item.Price.IsNegative() {
		err = multierr.Append(err, fmt.Errorf("item %s: negative price", item.ID))
	}
	if _, ok := categoryIDs[item.CategoryID]; !ok {
		err = multierr.Append(err, fmt.Errorf("item %s: unknown category %s", item.ID, item.CategoryID))
	}
	seenGroups := map[string]struct{}{}
	for _, group := range item.Options {
		if _, dup := seenGroups[group.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("item %s: duplicate option group %s", item.ID, group.ID))
		}
		seenGroups[group.ID] = struct{}{}
		if len(group.Choices) == 0 {
			err = multierr.Append(err, fmt.Errorf("item %s: option group %s has no choices", item.ID, group.ID))
		}
		seenChoices := map[string]struct{}{}
		for _, choice := range group.Choices {
			if _, dup := seenChoices[choice.ID]; dup {
				err = multierr.Append(err, fmt.Errorf("item %s: duplicate choice %s in group %s", item.ID, choice.ID, group.ID))
			}
			seenChoices[choice.ID] = struct{}{}
			if choice.Price.IsNegative() {
				err = multierr.Append(err, fmt.Errorf("item %s: choice %s has negative price delta", item.ID, choice.ID))
			}
		}
	}
	return err
}

func (r *repository) GetItem(ctx context.Context, id string) (*Item, error) {
	idx, ok := r.itemsByID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	item := r.items[idx]
	return &item, nil
}

func (r *repository) ListItems(ctx context.Context, filter ListFilter) ([]Item, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	results := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		if filter.CategoryID != "" && item.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Popular && !item.IsPopular {
			continue
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		results = append(results, item)
	}
	return results, nil
}

func matchesSearch(item Item, search string) bool {
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Description), search)
}

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *repository) ListPromotions(ctx context.Context) ([]Promotion, error) {
	out := make([]Promotion, len(r.promotions))
	copy(out, r.promotions)
	return out, nil
}

func (r *repository) FindPromotionByCode(ctx context.Context, code string) (*Promotion, error) {
	idx, ok := r.promoByCode[normalizeCode(code)]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "promotion not found")
	}
	promo := r.promotions[idx]
	return &promo, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
