// Package cardmodel applies form edits to a card.
package cardmodel

import (
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/profiles"
)

// Change reports what an edit touched.
type Change int

// Changes
const (
	ChangeNone Change = iota
	ChangeField
	ChangePhoto
	// ChangeCategory means the category key now differs from before; the
	// caller must draw a new identifier.
	ChangeCategory
)

func (c Change) String() string {
	switch c {
	case ChangeField:
		return "field"
	case ChangePhoto:
		return "photo"
	case ChangeCategory:
		return "category"
	default:
		return "none"
	}
}

// ApplyField writes value into card according to the profile:
//   - the category field updates CategoryKey
//   - the photo field stores the reference and clears UseDefaultPhoto; an
//     empty value means no file was chosen and changes nothing
//   - anything else is stored verbatim
//
// It never fails. Re-selecting the current category is ChangeNone.
func ApplyField(card *entities.Card, profile *profiles.Profile, name, value string) Change {
	switch name {
	case profile.CategoryField:
		if card.CategoryKey == value {
			return ChangeNone
		}
		card.CategoryKey = value
		return ChangeCategory

	case entities.FieldPhoto:
		if value == "" {
			return ChangeNone
		}
		card.PhotoRef = value
		card.UseDefaultPhoto = false
		return ChangePhoto
	}

	if card.Fields == nil {
		card.Fields = make(map[string]string)
	}
	card.Fields[name] = value
	return ChangeField
}
