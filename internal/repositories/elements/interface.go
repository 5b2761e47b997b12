package elements

//go:generate mockgen -destination=mock/mock_repository.go -package=mockelements -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
)

// Repository defines the interface for overlay element persistence
type Repository interface {
	// Create stores a new element
	Create(ctx context.Context, el *element.Element) error

	// Get retrieves an element by ID
	Get(ctx context.Context, id string) (*element.Element, error)

	// Update replaces an existing element
	Update(ctx context.Context, el *element.Element) error

	// Delete removes an element
	Delete(ctx context.Context, id string) error

	// List returns every stored element ordered by ID
	List(ctx context.Context) ([]*element.Element, error)
}
