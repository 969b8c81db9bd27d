// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/cardgen/internal/entities"
)

// CardBuilder provides a fluent interface for building test Card instances
type CardBuilder struct {
	card *entities.Card
}

// NewCardBuilder creates a landscape typology card with no fields set
func NewCardBuilder() *CardBuilder {
	now := time.Now().Unix()
	return &CardBuilder{
		card: &entities.Card{
			ID:          "card-test-123",
			Type:        entities.CardTypeTypology,
			Orientation: entities.OrientationLandscape,
			Fields:      make(map[string]string),
			Quality:     3,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// WithID sets the card ID
func (b *CardBuilder) WithID(id string) *CardBuilder {
	b.card.ID = id
	return b
}

// WithType sets the card type
func (b *CardBuilder) WithType(t entities.CardType) *CardBuilder {
	b.card.Type = t
	return b
}

// WithOrientation sets the layout
func (b *CardBuilder) WithOrientation(o entities.Orientation) *CardBuilder {
	b.card.Orientation = o
	return b
}

// WithCategory sets the raw category key
func (b *CardBuilder) WithCategory(key string) *CardBuilder {
	b.card.CategoryKey = key
	return b
}

// WithIdentifier sets the printed card number
func (b *CardBuilder) WithIdentifier(identifier string) *CardBuilder {
	b.card.Identifier = identifier
	return b
}

// WithName sets the name field
func (b *CardBuilder) WithName(name string) *CardBuilder {
	return b.WithField(entities.FieldName, name)
}

// WithField sets a free-text field
func (b *CardBuilder) WithField(name, value string) *CardBuilder {
	b.card.Fields[name] = value
	return b
}

// WithPhoto sets the photo reference
func (b *CardBuilder) WithPhoto(ref string) *CardBuilder {
	b.card.PhotoRef = ref
	return b
}

// WithDefaultPhoto hides the photo behind the theme symbol
func (b *CardBuilder) WithDefaultPhoto() *CardBuilder {
	b.card.UseDefaultPhoto = true
	return b
}

// WithQuality sets the export pixel ratio
func (b *CardBuilder) WithQuality(q int) *CardBuilder {
	b.card.Quality = q
	return b
}

// WithCreatedAt sets both timestamps
func (b *CardBuilder) WithCreatedAt(unix int64) *CardBuilder {
	b.card.CreatedAt = unix
	b.card.UpdatedAt = unix
	return b
}

// Build returns a copy of the card
func (b *CardBuilder) Build() *entities.Card {
	return b.card.Clone()
}
