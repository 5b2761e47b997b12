package elements

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	elements map[string]*element.Element
}

// NewInMemoryRepository creates a new in-memory element repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		elements: make(map[string]*element.Element),
	}
}

func (r *inMemoryRepository) Create(_ context.Context, el *element.Element) error {
	if el == nil {
		return overlayerr.InvalidArgument("element cannot be nil")
	}
	if el.ID == "" {
		return overlayerr.InvalidArgument("element ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.elements[el.ID]; exists {
		return overlayerr.AlreadyExistsf("element %s already exists", el.ID).
			WithMeta("element_id", el.ID)
	}

	r.elements[el.ID] = el.Clone()
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*element.Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	el, exists := r.elements[id]
	if !exists {
		return nil, overlayerr.NotFoundf("element %s not found", id).
			WithMeta("element_id", id)
	}

	return el.Clone(), nil
}

func (r *inMemoryRepository) Update(_ context.Context, el *element.Element) error {
	if el == nil {
		return overlayerr.InvalidArgument("element cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.elements[el.ID]; !exists {
		return overlayerr.NotFoundf("element %s not found", el.ID).
			WithMeta("element_id", el.ID)
	}

	r.elements[el.ID] = el.Clone()
	return nil
}

func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.elements[id]; !exists {
		return overlayerr.NotFoundf("element %s not found", id).
			WithMeta("element_id", id)
	}

	delete(r.elements, id)
	return nil
}

func (r *inMemoryRepository) List(_ context.Context) ([]*element.Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*element.Element, 0, len(r.elements))
	for _, el := range r.elements {
		out = append(out, el.Clone())
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
