// Package cards stores in-progress cards for the life of the process
package cards

//go:generate mockgen -destination=mock/mock_repository.go -package=cardsmock github.com/KirkDiggler/cardgen/internal/repositories/cards Repository

import (
	"context"

	"github.com/KirkDiggler/cardgen/internal/entities"
)

// Repository defines the storage interface for cards
type Repository interface {
	// Create stores a new card; the ID must be unused
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a card by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces an existing card
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes a card
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns every stored card ordered by creation time
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// CreateInput defines the request for creating a card
type CreateInput struct {
	Card *entities.Card
}

// CreateOutput defines the response for creating a card
type CreateOutput struct {
	Card *entities.Card
}

// GetInput defines the request for retrieving a card
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a card
type GetOutput struct {
	Card *entities.Card
}

// UpdateInput defines the request for updating a card
type UpdateInput struct {
	Card *entities.Card
}

// UpdateOutput defines the response for updating a card
type UpdateOutput struct {
	Card *entities.Card
}

// DeleteInput defines the request for deleting a card
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting a card
type DeleteOutput struct{}

// ListInput defines the request for listing cards
type ListInput struct {
	Type entities.CardType
}

// ListOutput defines the response for listing cards
type ListOutput struct {
	Cards []*entities.Card
}
