package initiativeorders

import (
	"context"
	"sync"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

// InMemoryRepository keeps orders in process. Orders are cloned on the way
// in and out so callers never share state with the store.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*initiative.Order
	active map[string]string // session ID -> order ID
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]*initiative.Order),
		active: make(map[string]string),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new order
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateOrder(input.Order); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order := input.Order
	if _, exists := r.orders[order.ID]; exists {
		return nil, errors.AlreadyExists("initiative order already exists").WithMeta("order_id", order.ID)
	}
	if order.Active {
		if _, busy := r.active[order.SessionID]; busy {
			return nil, errors.AlreadyExists("session already has an active initiative order").
				WithMeta("session_id", order.SessionID)
		}
		r.active[order.SessionID] = order.ID
	}
	r.orders[order.ID] = order.Clone()

	return &CreateOutput{Order: order.Clone()}, nil
}

// Get retrieves an order by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[input.OrderID]
	if !ok {
		return nil, errors.NotFound("initiative order not found").WithMeta("order_id", input.OrderID)
	}
	return &GetOutput{Order: order.Clone()}, nil
}

// GetActive retrieves the session's active order
func (r *InMemoryRepository) GetActive(_ context.Context, input GetActiveInput) (*GetActiveOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orderID, ok := r.active[input.SessionID]
	if !ok {
		return nil, errors.NotFound("no active initiative order").WithMeta("session_id", input.SessionID)
	}
	return &GetActiveOutput{Order: r.orders[orderID].Clone()}, nil
}

// Update replaces an existing order
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateOrder(input.Order); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order := input.Order
	if _, ok := r.orders[order.ID]; !ok {
		return nil, errors.NotFound("initiative order not found").WithMeta("order_id", order.ID)
	}
	r.orders[order.ID] = order.Clone()
	if !order.Active && r.active[order.SessionID] == order.ID {
		delete(r.active, order.SessionID)
	}

	return &UpdateOutput{Order: order.Clone()}, nil
}

// Delete removes an order
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[input.OrderID]
	if !ok {
		return nil, errors.NotFound("initiative order not found").WithMeta("order_id", input.OrderID)
	}
	delete(r.orders, input.OrderID)
	if r.active[order.SessionID] == order.ID {
		delete(r.active, order.SessionID)
	}
	return &DeleteOutput{}, nil
}
