package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// SelectedOption pairs an option group with the chosen choice ids. ChoiceIDs
// carry set semantics: order is irrelevant and ids are unique.
type SelectedOption struct {
	OptionID  string   `json:"option_id"`
	ChoiceIDs []string `json:"choice_ids"`
}

// LineItem is one cart entry. Item is a snapshot of the catalog item taken at
// add time; ID is generated per add so repeated adds are distinguishable until
// they merge.
type LineItem struct {
	ID                  uuid.UUID        `json:"id"`
	Item                catalog.Item     `json:"menu_item"`
	Quantity            int              `json:"quantity"`
	SelectedOptions     []SelectedOption `json:"selected_options"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	TotalPrice          decimal.Decimal  `json:"total_price"`
}

// NewLineItem builds a candidate line item with a fresh id and the add-time
// total (unit price plus all selected choice deltas, times quantity).
func NewLineItem(item catalog.Item, quantity int, selections []SelectedOption, instructions string) LineItem {
	return LineItem{
		ID:                  uuid.New(),
		Item:                item,
		Quantity:            quantity,
		SelectedOptions:     selections,
		SpecialInstructions: instructions,
		TotalPrice:          LineTotal(item, quantity, selections),
	}
}

// Store owns the authoritative cart state. It is constructed explicitly and
// handed to collaborators; mutations replace the line-item slice wholesale, so
// snapshots returned before a mutation never observe it.
type Store struct {
	mu        sync.Mutex
	items     []LineItem
	observers map[int]func()
	nextObsID int
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{observers: map[int]func(){}}
}

// Subscribe registers a callback invoked synchronously after every mutation.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// AddItem merges the candidate into an existing line when the catalog item and
// the selected-option sets match exactly; otherwise it appends the candidate.
// The merge total keeps the storefront's original formula, quantity times unit
// price, which does not re-apply option deltas.
func (s *Store) AddItem(candidate LineItem) {
	s.mu.Lock()
	matched := -1
	for idx, existing := range s.items {
		if existing.Item.ID != candidate.Item.ID {
			continue
		}
		if optionsEqual(existing.SelectedOptions, candidate.SelectedOptions) {
			matched = idx
			break
		}
	}

	next := make([]LineItem, len(s.items))
	copy(next, s.items)
	if matched >= 0 {
		updated := next[matched]
		updated.Quantity += candidate.Quantity
		updated.TotalPrice = updated.Item.Price.Mul(decimal.NewFromInt(int64(updated.Quantity)))
		next[matched] = updated
	} else {
		next = append(next, candidate)
	}
	s.items = next
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers)
}

// RemoveItem filters out the line with the given id. Absent ids are a no-op.
func (s *Store) RemoveItem(lineItemID uuid.UUID) {
	s.mu.Lock()
	next := make([]LineItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID == lineItemID {
			continue
		}
		next = append(next, item)
	}
	s.items = next
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers)
}

// UpdateQuantity sets the quantity of the matching line and recomputes its
// total as quantity times unit price. Quantities below 1 are rejected; callers
// that want to drop a line use RemoveItem. Absent ids are a no-op.
func (s *Store) UpdateQuantity(lineItemID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be at least 1")
	}

	s.mu.Lock()
	next := make([]LineItem, len(s.items))
	copy(next, s.items)
	for idx, item := range next {
		if item.ID != lineItemID {
			continue
		}
		item.Quantity = quantity
		item.TotalPrice = item.Item.Price.Mul(decimal.NewFromInt(int64(quantity)))
		next[idx] = item
		break
	}
	s.items = next
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers)
	return nil
}

// Clear resets the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers)
}

// Items returns the current line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Find returns the line with the given id, if present.
func (s *Store) Find(lineItemID uuid.UUID) (LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == lineItemID {
			return item, true
		}
	}
	return LineItem{}, false
}

// CartTotal sums TotalPrice across all lines.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

// ItemCount sums quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) snapshotObservers() []func() {
	out := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		out = append(out, fn)
	}
	return out
}

// notify runs outside the store lock so observers may read the store.
func notify(observers []func()) {
	for _, fn := range observers {
		fn()
	}
}

// optionsEqual compares selections as sets of sets: every group present in one
// must appear in the other with an identical set of choice ids.
func optionsEqual(a, b []SelectedOption) bool {
	if len(a) != len(b) {
		return false
	}
	byOption := make(map[string]map[string]struct{}, len(b))
	for _, sel := range b {
		byOption[sel.OptionID] = choiceSet(sel.ChoiceIDs)
	}
	if len(byOption) != len(b) {
		// duplicate group ids collapse; fall back to strict mismatch
		return false
	}
	for _, sel := range a {
		other, ok := byOption[sel.OptionID]
		if !ok {
			return false
		}
		mine := choiceSet(sel.ChoiceIDs)
		if len(mine) != len(other) {
			return false
		}
		for id := range mine {
			if _, ok := other[id]; !ok {
				return false
			}
		}
	}
	return true
}

func choiceSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
