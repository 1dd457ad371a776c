package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func calamari() catalog.Item {
	return catalog.Item{
		ID:         "101",
		Name:       "Crispy Calamari",
		Price:      dec("12.99"),
		CategoryID: "1",
		Options: []catalog.OptionGroup{
			{
				ID:   "opt1",
				Name: "Dipping Sauce",
				Choices: []catalog.Choice{
					{ID: "c1", Name: "Marinara", Price: dec("0")},
					{ID: "c3", Name: "Spicy Mayo", Price: dec("0.50")},
				},
				Required: true,
			},
		},
	}
}

func TestAddItemMergesMatchingSelections(t *testing.T) {
	t.Parallel()

	store := NewStore()
	item := calamari()
	selections := []SelectedOption{{OptionID: "opt1", ChoiceIDs: []string{"c3"}}}

	first := NewLineItem(item, 1, selections, "")
	store.AddItem(first)

	if got := store.CartTotal(); !got.Equal(dec("13.49")) {
		t.Fatalf("expected add-time total 13.49, got %s", got)
	}

	second := NewLineItem(item, 2, selections, "")
	store.AddItem(second)

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", items[0].Quantity)
	}
	// merge pricing drops the 0.50 delta: 3 x 12.99
	if !items[0].TotalPrice.Equal(dec("38.97")) {
		t.Fatalf("expected merged total 38.97, got %s", items[0].TotalPrice)
	}
	if items[0].ID != first.ID {
		t.Fatalf("merge must update the first matching line in place")
	}
}

func TestAddItemMergeIgnoresChoiceOrder(t *testing.T) {
	t.Parallel()

	item := catalog.Item{
		ID:    "900",
		Name:  "Combo",
		Price: dec("10.00"),
		Options: []catalog.OptionGroup{
			{ID: "optA", Name: "Extras", MultiSelect: true, Choices: []catalog.Choice{
				{ID: "x1", Price: dec("1.00")},
				{ID: "x2", Price: dec("2.00")},
			}},
		},
	}

	store := NewStore()
	store.AddItem(NewLineItem(item, 1, []SelectedOption{{OptionID: "optA", ChoiceIDs: []string{"x1", "x2"}}}, ""))
	store.AddItem(NewLineItem(item, 1, []SelectedOption{{OptionID: "optA", ChoiceIDs: []string{"x2", "x1"}}}, ""))

	if got := len(store.Items()); got != 1 {
		t.Fatalf("order-independent selections must merge, got %d lines", got)
	}
	if got := store.ItemCount(); got != 2 {
		t.Fatalf("expected merged quantity 2, got %d", got)
	}
}

func TestAddItemDoesNotMergeOnDivergence(t *testing.T) {
	t.Parallel()

	item := calamari()
	tests := []struct {
		name  string
		left  []SelectedOption
		right []SelectedOption
	}{
		{
			name:  "different choice",
			left:  []SelectedOption{{OptionID: "opt1", ChoiceIDs: []string{"c1"}}},
			right: []SelectedOption{{OptionID: "opt1", ChoiceIDs: []string{"c3"}}},
		},
		{
			name:  "different cardinality",
			left:  []SelectedOption{{OptionID: "opt1", ChoiceIDs: []string{"c1"}}},
			right: []SelectedOption{{OptionID: "opt1", ChoiceIDs: []string{"c1", "c3"}}},
		},
		{
			name:  "different group count",
			left:  []SelectedOption{{OptionID: "opt1", ChoiceIDs: []string{"c1"}}},
			right: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := NewStore()
			store.AddItem(NewLineItem(item, 1, tt.left, ""))
			store.AddItem(NewLineItem(item, 1, tt.right, ""))
			if got := len(store.Items()); got != 2 {
				t.Fatalf("expected two distinct lines, got %d", got)
			}
		})
	}
}

func TestAddItemDifferentCatalogItemsNeverMerge(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddItem(NewLineItem(catalog.Item{ID: "1", Price: dec("5.00")}, 1, nil, ""))
	store.AddItem(NewLineItem(catalog.Item{ID: "2", Price: dec("5.00")}, 1, nil, ""))

	if got := len(store.Items()); got != 2 {
		t.Fatalf("expected two lines, got %d", got)
	}
}

func TestCountAndTotalLinearity(t *testing.T) {
	t.Parallel()

	store := NewStore()
	item := calamari()
	sauce := []SelectedOption{{OptionID: "opt1", ChoiceIDs: []string{"c1"}}}

	store.AddItem(NewLineItem(item, 2, sauce, ""))
	store.AddItem(NewLineItem(catalog.Item{ID: "501", Price: dec("4.99")}, 3, nil, ""))
	store.AddItem(NewLineItem(item, 1, sauce, "")) // merges into the first line

	if got := store.ItemCount(); got != 6 {
		t.Fatalf("expected item count 6, got %d", got)
	}

	want := decimal.Zero
	for _, line := range store.Items() {
		want = want.Add(line.TotalPrice)
	}
	if got := store.CartTotal(); !got.Equal(want) {
		t.Fatalf("cart total %s must equal sum of line totals %s", got, want)
	}
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	store := NewStore()
	keep := NewLineItem(catalog.Item{ID: "1", Price: dec("5.00")}, 1, nil, "")
	drop := NewLineItem(catalog.Item{ID: "2", Price: dec("7.00")}, 4, nil, "")
	store.AddItem(keep)
	store.AddItem(drop)

	before := store.ItemCount()
	store.RemoveItem(drop.ID)

	if _, found := store.Find(drop.ID); found {
		t.Fatal("removed line should be absent")
	}
	if got := store.ItemCount(); got != before-4 {
		t.Fatalf("expected count to drop by 4, got %d", got)
	}

	// absent id is a no-op
	store.RemoveItem(uuid.New())
	if got := len(store.Items()); got != 1 {
		t.Fatalf("remove of absent id must not change state, got %d lines", got)
	}
}

func TestUpdateQuantityRecomputesUnitPriceOnly(t *testing.T) {
	t.Parallel()

	store := NewStore()
	item := calamari()
	line := NewLineItem(item, 1, []SelectedOption{{OptionID: "opt1", ChoiceIDs: []string{"c3"}}}, "")
	store.AddItem(line)

	if err := store.UpdateQuantity(line.ID, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, found := store.Find(line.ID)
	if !found {
		t.Fatal("line should still exist")
	}
	if updated.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", updated.Quantity)
	}
	// update pricing drops the 0.50 delta: 4 x 12.99
	if !updated.TotalPrice.Equal(dec("51.96")) {
		t.Fatalf("expected total 51.96, got %s", updated.TotalPrice)
	}
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	t.Parallel()

	store := NewStore()
	line := NewLineItem(catalog.Item{ID: "1", Price: dec("5.00")}, 2, nil, "")
	store.AddItem(line)

	for _, qty := range []int{0, -3} {
		err := store.UpdateQuantity(line.ID, qty)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidQuantity {
			t.Fatalf("expected INVALID_QUANTITY for %d, got %v", qty, err)
		}
	}

	if got, _ := store.Find(line.ID); got.Quantity != 2 {
		t.Fatalf("rejected update must not change quantity, got %d", got.Quantity)
	}
}

func TestClearIsTotal(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddItem(NewLineItem(calamari(), 3, nil, ""))
	store.Clear()

	if got := store.CartTotal(); !got.IsZero() {
		t.Fatalf("expected zero total after clear, got %s", got)
	}
	if got := store.ItemCount(); got != 0 {
		t.Fatalf("expected zero count after clear, got %d", got)
	}

	// clearing an empty cart stays empty
	store.Clear()
	if got := len(store.Items()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestSnapshotsDoNotAliasState(t *testing.T) {
	t.Parallel()

	store := NewStore()
	line := NewLineItem(calamari(), 1, nil, "")
	store.AddItem(line)

	snapshot := store.Items()
	if err := store.UpdateQuantity(line.ID, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot[0].Quantity != 1 {
		t.Fatalf("pre-mutation snapshot must be unaffected, got quantity %d", snapshot[0].Quantity)
	}
}

func TestSubscribeNotifiesAfterEveryMutation(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var seenCounts []int
	unsubscribe := store.Subscribe(func() {
		seenCounts = append(seenCounts, store.ItemCount())
	})

	line := NewLineItem(calamari(), 2, nil, "")
	store.AddItem(line)
	if err := store.UpdateQuantity(line.ID, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Clear()

	if len(seenCounts) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seenCounts))
	}
	if seenCounts[0] != 2 || seenCounts[1] != 3 || seenCounts[2] != 0 {
		t.Fatalf("observer must see post-mutation state, got %v", seenCounts)
	}

	unsubscribe()
	store.AddItem(NewLineItem(calamari(), 1, nil, ""))
	if len(seenCounts) != 3 {
		t.Fatalf("unsubscribed observer must not fire, got %d notifications", len(seenCounts))
	}
}
