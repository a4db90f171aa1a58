// Package initiativeorders persists combat initiative orders. At most one
// order per session is active at a time.
package initiativeorders

import (
	"context"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=initiativeordersmock github.com/KirkDiggler/vtm-api/internal/repositories/initiative_orders Repository

// CreateInput contains the order to store
type CreateInput struct {
	Order *initiative.Order
}

// CreateOutput contains the stored order
type CreateOutput struct {
	Order *initiative.Order
}

// GetInput identifies an order
type GetInput struct {
	OrderID string
}

// GetOutput contains the order
type GetOutput struct {
	Order *initiative.Order
}

// GetActiveInput identifies a session
type GetActiveInput struct {
	SessionID string
}

// GetActiveOutput contains the session's running order
type GetActiveOutput struct {
	Order *initiative.Order
}

// UpdateInput contains the order to replace
type UpdateInput struct {
	Order *initiative.Order
}

// UpdateOutput contains the stored order
type UpdateOutput struct {
	Order *initiative.Order
}

// DeleteInput identifies an order
type DeleteInput struct {
	OrderID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// Repository defines initiative order storage
type Repository interface {
	// Create stores a new order. It fails with AlreadyExists when the session
	// already has an active order.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an order by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetActive retrieves the session's active order
	GetActive(ctx context.Context, input GetActiveInput) (*GetActiveOutput, error)

	// Update replaces an existing order. Storing an ended order frees the
	// session for a new combat.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an order and frees its session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

func validateOrder(order *initiative.Order) error {
	if order == nil {
		return errors.InvalidArgument("order is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("order.id", order.ID, vb)
	errors.ValidateRequired("order.session_id", order.SessionID, vb)
	return vb.Build()
}
