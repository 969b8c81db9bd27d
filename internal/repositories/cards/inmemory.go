package cards

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/errors"
)

const (
	errInputNil  = "input is required"
	errCardNil   = "card is required"
	errIDEmpty   = "card ID is required"
	errNotFound  = "card not found"
	errDuplicate = "card already exists"
)

// InMemoryRepository implements Repository with a map. Cards are copied on
// the way in and out so callers never share state with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Card
}

// NewInMemory creates an empty repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Card),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new card
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Card.ID]; exists {
		return nil, errors.New(errors.CodeFailedPrecondition, errDuplicate).WithMeta("card_id", input.Card.ID)
	}
	r.store[input.Card.ID] = input.Card.Clone()

	return &CreateOutput{Card: input.Card.Clone()}, nil
}

// Get retrieves a card by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	card, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFound(errNotFound).WithMeta("card_id", input.ID)
	}

	return &GetOutput{Card: card.Clone()}, nil
}

// Update replaces an existing card
func (r *InMemoryRepository) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Card.ID]; !exists {
		return nil, errors.NotFound(errNotFound).WithMeta("card_id", input.Card.ID)
	}
	r.store[input.Card.ID] = input.Card.Clone()

	return &UpdateOutput{Card: input.Card.Clone()}, nil
}

// Delete removes a card
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFound(errNotFound).WithMeta("card_id", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns stored cards, optionally of one type
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Card, 0, len(r.store))
	for _, card := range r.store {
		if input.Type != "" && card.Type != input.Type {
			continue
		}
		out = append(out, card.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})

	return &ListOutput{Cards: out}, nil
}
