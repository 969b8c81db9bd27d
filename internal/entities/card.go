// Package entities provides the card records shared across cardgen.
package entities

import "maps"

// CardType selects the profile, theme catalog and layout of a card
type CardType string

// Card types
const (
	CardTypeTypology  CardType = "typology"
	CardTypeFaction   CardType = "faction"
	CardTypeDeveloper CardType = "developer"
)

// CardTypes lists every card type in display order
var CardTypes = []CardType{CardTypeTypology, CardTypeFaction, CardTypeDeveloper}

// Valid reports whether t is a known card type
func (t CardType) Valid() bool {
	switch t {
	case CardTypeTypology, CardTypeFaction, CardTypeDeveloper:
		return true
	}
	return false
}

// Orientation is the physical form factor of a card
type Orientation string

// Orientations
const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// Field names shared by every card type. Category-selecting fields differ per
// type and live on the profile.
const (
	FieldName       = "name"
	FieldPhoto      = "profilePic"
	FieldVisibility = "visibility"
)

// Card is one in-progress card. It only lives in the session store and is
// dropped on delete or process exit.
type Card struct {
	ID          string            `json:"id"`
	Type        CardType          `json:"type"`
	Orientation Orientation       `json:"orientation"`
	CategoryKey string            `json:"category_key"`
	Identifier  string            `json:"identifier"`
	Fields      map[string]string `json:"fields"`
	PhotoRef    string            `json:"photo_ref,omitempty"`
	// UseDefaultPhoto hides PhotoRef from the rendered card without clearing it
	UseDefaultPhoto bool  `json:"use_default_photo"`
	Quality         int   `json:"quality"`
	CreatedAt       int64 `json:"created_at"`
	UpdatedAt       int64 `json:"updated_at"`
}

// Field returns the value of a free-text field, "" when unset.
func (c *Card) Field(name string) string {
	if c.Fields == nil {
		return ""
	}
	return c.Fields[name]
}

// Clone returns a deep copy so callers never share the Fields map.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	out := *c
	out.Fields = maps.Clone(c.Fields)
	if out.Fields == nil {
		out.Fields = make(map[string]string)
	}
	return &out
}
