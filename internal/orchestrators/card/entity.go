package card

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/cardgen/internal/entities"
)

// Event and entity types published on the card event bus
const (
	EventCategoryChanged = "card.category_changed"
	EntityTypeCard       = "card"
)

// CardEntity wraps a card so it can travel on the event bus. Handlers may
// modify the wrapped card; the publisher persists it afterwards.
type CardEntity struct {
	Card *entities.Card
}

// GetID returns the card ID
func (e *CardEntity) GetID() string {
	return e.Card.ID
}

// GetType returns "card"
func (e *CardEntity) GetType() string {
	return EntityTypeCard
}

var _ core.Entity = (*CardEntity)(nil)
