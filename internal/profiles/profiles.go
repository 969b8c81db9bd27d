// Package profiles holds the fixed, per-card-type constants: which field
// selects the category, layout sizes, expiry offset, placeholder values and
// export naming.
package profiles

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/themes"
)

// Dimensions of a card surface in CSS pixels
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Detail is one labelled line printed under the name.
type Detail struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// Profile describes one card type. Profiles are read-only.
type Profile struct {
	Type           entities.CardType `json:"type"`
	Title          string            `json:"title"`
	Catalog        *themes.Catalog   `json:"-"`
	CategoryField  string            `json:"category_field"`
	FallbackPrefix string            `json:"fallback_prefix"`
	// ExpiryYears is added to the issue date to print the expiry date
	ExpiryYears     int                                 `json:"expiry_years"`
	Sizes           map[entities.Orientation]Dimensions `json:"sizes"`
	SubtextFields   []string                            `json:"subtext_fields,omitempty"`
	Details         []Detail                            `json:"details"`
	QuoteField      string                              `json:"quote_field,omitempty"`
	Tagline         string                              `json:"tagline"`
	DefaultCategory string                              `json:"default_category"`
	DefaultFields   map[string]string                   `json:"default_fields"`
	DefaultQuality  int                                 `json:"default_quality"`
	FilenameSuffix  string                              `json:"filename_suffix"`
}

var (
	landscape = Dimensions{Width: 320, Height: 202}
	portrait  = Dimensions{Width: 202, Height: 320}
)

var registry = map[entities.CardType]*Profile{
	entities.CardTypeTypology: {
		Type:           entities.CardTypeTypology,
		Title:          "TYPOLOGY ID",
		Catalog:        themes.ForType(entities.CardTypeTypology),
		CategoryField:  "mbti",
		FallbackPrefix: "0",
		ExpiryYears:    50,
		Sizes: map[entities.Orientation]Dimensions{
			entities.OrientationLandscape: landscape,
			entities.OrientationPortrait:  portrait,
		},
		SubtextFields: []string{"typology1", "typology2", "typology3", "typology4", "typology5"},
		Details: []Detail{
			{Field: "zodiac", Label: "Zodiac"},
		},
		QuoteField:      "motto",
		Tagline:         "Unlocking the soul through structure and typology.",
		DefaultCategory: "ISFJ",
		DefaultFields: map[string]string{
			entities.FieldName:       "YOUR NAME",
			"typology1":              "XXX",
			"typology2":              "XXX",
			"typology3":              "",
			"typology4":              "",
			"typology5":              "",
			"zodiac":                 "XXX",
			"motto":                  "Knowledge is Power, but character is more",
			entities.FieldVisibility: "public",
		},
		DefaultQuality: 3,
		FilenameSuffix: "MBTI_Card",
	},
	entities.CardTypeFaction: {
		Type:           entities.CardTypeFaction,
		Title:          "GUP ID CARD",
		Catalog:        themes.ForType(entities.CardTypeFaction),
		CategoryField:  "school",
		FallbackPrefix: "XX",
		ExpiryYears:    4,
		Sizes: map[entities.Orientation]Dimensions{
			entities.OrientationLandscape: landscape,
		},
		Details: []Detail{
			{Field: "tank", Label: "Tank"},
			{Field: "role", Label: "Role"},
			{Field: "bio2", Label: "Team"},
		},
		QuoteField:      "motto",
		Tagline:         "Panzer vor!",
		DefaultCategory: "oarai",
		DefaultFields: map[string]string{
			entities.FieldName:       "CHARACTER NAME",
			"role":                   "Gunner",
			"motto":                  "Panzer vor!",
			"tank":                   "T34",
			"bio2":                   "",
			entities.FieldVisibility: "public",
		},
		DefaultQuality: 3,
		FilenameSuffix: "GUP_Card",
	},
	entities.CardTypeDeveloper: {
		Type:           entities.CardTypeDeveloper,
		Title:          "DEVELOPER ID CARD",
		Catalog:        themes.ForType(entities.CardTypeDeveloper),
		CategoryField:  "language",
		FallbackPrefix: "XX",
		ExpiryYears:    4,
		Sizes: map[entities.Orientation]Dimensions{
			entities.OrientationLandscape: landscape,
		},
		Details: []Detail{
			{Field: "techStack", Label: "Stack"},
			{Field: "role", Label: "Role"},
		},
		QuoteField:      "tagline",
		Tagline:         "Valid 4 Years",
		DefaultCategory: "html",
		DefaultFields: map[string]string{
			entities.FieldName:       "Programmer Name",
			"role":                   "Fullstack Developer",
			"tagline":                "Code. Facebook. Repeat.",
			"techStack":              "PHP - CSS - HTML",
			entities.FieldVisibility: "public",
		},
		DefaultQuality: 5,
		FilenameSuffix: "Dev_Card",
	},
}

// Lookup returns the profile of a card type
func Lookup(t entities.CardType) (*Profile, bool) {
	p, ok := registry[t]
	return p, ok
}

// All returns every profile in card type order
func All() []*Profile {
	out := make([]*Profile, 0, len(entities.CardTypes))
	for _, t := range entities.CardTypes {
		out = append(out, registry[t])
	}
	return out
}

// Supports reports whether the card type can be laid out in o
func (p *Profile) Supports(o entities.Orientation) bool {
	_, ok := p.Sizes[o]
	return ok
}

// Size returns the surface size for o, falling back to landscape.
func (p *Profile) Size(o entities.Orientation) Dimensions {
	if d, ok := p.Sizes[o]; ok {
		return d
	}
	return p.Sizes[entities.OrientationLandscape]
}

// Orientations lists supported orientations, landscape first
func (p *Profile) Orientations() []entities.Orientation {
	out := slices.Collect(maps.Keys(p.Sizes))
	slices.Sort(out)
	return out
}

// Prefix returns the identifier prefix for theme, using the profile's
// fallback when the theme has none.
func (p *Profile) Prefix(theme themes.Theme) string {
	if theme.IDPrefix != "" {
		return theme.IDPrefix
	}
	return p.FallbackPrefix
}

// NewCard returns a card populated with the profile's placeholders. The
// identifier is left empty for the caller to draw.
func (p *Profile) NewCard(id string, orientation entities.Orientation, now int64) *entities.Card {
	if !p.Supports(orientation) {
		orientation = entities.OrientationLandscape
	}
	return &entities.Card{
		ID:          id,
		Type:        p.Type,
		Orientation: orientation,
		CategoryKey: p.DefaultCategory,
		Fields:      maps.Clone(p.DefaultFields),
		Quality:     p.DefaultQuality,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
