package orders

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	pkgerrors "github.com/quickbite-app/quickbite-backend/pkg/errors"
)

// Repository stores placed orders for the session. In-memory only; history is
// lost when the process exits.
type Repository interface {
	Create(ctx context.Context, order *Order) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
}

type repository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]Order
}

// NewRepository returns an order store seeded with the provided history.
func NewRepository(seed []Order) Repository {
	repo := &repository{orders: make(map[uuid.UUID]Order, len(seed))}
	for _, order := range seed {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *repository) Create(ctx context.Context, order *Order) (*Order, error) {
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[order.ID]; exists {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order already exists")
	}
	r.orders[order.ID] = *order
	return order, nil
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return &order, nil
}
