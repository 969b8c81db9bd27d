// Package display computes everything a rendered card shows that is not
// stored on the card itself. All functions are pure; callers pass the clock
// reading in.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/profiles"
	"github.com/KirkDiggler/cardgen/internal/themes"
)

// Date layouts
const (
	IssueDateLayout  = "02/01/2006"
	ExpiryDateLayout = "2006-01-02"
)

// SubtextSeparator joins the non-empty subtext parts
const SubtextSeparator = " - "

// Photo is what fills the portrait box: the uploaded photo or, when Ref is
// empty, the theme symbol. Symbol is always set.
type Photo struct {
	Ref    string `json:"ref,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// UsesSymbol reports whether the symbol is shown instead of a photo
func (p Photo) UsesSymbol() bool {
	return p.Ref == ""
}

// Line is a labelled detail row.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Fields is the projection of a card at one instant.
type Fields struct {
	CardID          string               `json:"card_id"`
	CardType        entities.CardType    `json:"card_type"`
	Orientation     entities.Orientation `json:"orientation"`
	Width           int                  `json:"width"`
	Height          int                  `json:"height"`
	Title           string               `json:"title"`
	Identifier      string               `json:"identifier"`
	Name            string               `json:"name"`
	Headline        string               `json:"headline"`
	CategoryLabel   string               `json:"category_label"`
	Theme           themes.Theme         `json:"theme"`
	Gradient        string               `json:"gradient"`
	Photo           Photo                `json:"photo"`
	IssueDate       string               `json:"issue_date"`
	ExpiryDate      string               `json:"expiry_date"`
	ComposedSubtext string               `json:"composed_subtext,omitempty"`
	Details         []Line               `json:"details,omitempty"`
	Quote           string               `json:"quote,omitempty"`
	Visibility      string               `json:"visibility"`
	Tagline         string               `json:"tagline"`
	QRPayload       string               `json:"qr_payload"`
}

// Project derives the display fields of card under theme at now.
func Project(card *entities.Card, profile *profiles.Profile, theme themes.Theme, now time.Time) *Fields {
	size := profile.Size(card.Orientation)
	name := card.Field(entities.FieldName)

	subtext := make([]string, 0, len(profile.SubtextFields))
	for _, f := range profile.SubtextFields {
		subtext = append(subtext, card.Field(f))
	}

	var details []Line
	for _, d := range profile.Details {
		if v := card.Field(d.Field); v != "" {
			details = append(details, Line{Label: d.Label, Value: v})
		}
	}

	var quote string
	if profile.QuoteField != "" {
		quote = card.Field(profile.QuoteField)
	}

	return &Fields{
		CardID:          card.ID,
		CardType:        card.Type,
		Orientation:     card.Orientation,
		Width:           size.Width,
		Height:          size.Height,
		Title:           profile.Title,
		Identifier:      card.Identifier,
		Name:            name,
		Headline:        Headline(card, theme),
		CategoryLabel:   theme.Label,
		Theme:           theme,
		Gradient:        theme.CSSGradient(),
		Photo:           DisplayPhoto(card, theme),
		IssueDate:       IssueDate(now),
		ExpiryDate:      ExpiryDate(now, profile.ExpiryYears),
		ComposedSubtext: ComposeSubtext(subtext...),
		Details:         details,
		Quote:           quote,
		Visibility:      strings.ToUpper(card.Field(entities.FieldVisibility)),
		Tagline:         profile.Tagline,
		QRPayload:       QRPayload(name, card.Identifier),
	}
}

// DisplayPhoto picks the photo unless it is missing, unusable or overridden.
func DisplayPhoto(card *entities.Card, theme themes.Theme) Photo {
	photo := Photo{Symbol: theme.Symbol}
	if UsablePhotoRef(card.PhotoRef) && !card.UseDefaultPhoto {
		photo.Ref = card.PhotoRef
	}
	return photo
}

// UsablePhotoRef reports whether ref can be loaded by a rendered card: an
// inline image or an http(s) URL.
func UsablePhotoRef(ref string) bool {
	switch {
	case strings.HasPrefix(ref, "data:image/"),
		strings.HasPrefix(ref, "https://"),
		strings.HasPrefix(ref, "http://"):
		return true
	}
	return false
}

// Headline is the large category text: the raw code for typology cards, the
// theme label for known categories elsewhere.
func Headline(card *entities.Card, theme themes.Theme) string {
	if card.Type != entities.CardTypeTypology && theme.Key != "" {
		return theme.Label
	}
	return strings.ToUpper(card.CategoryKey)
}

// IssueDate formats now as dd/mm/yyyy
func IssueDate(now time.Time) string {
	return now.Format(IssueDateLayout)
}

// ExpiryDate adds years to now and formats the UTC date as yyyy-mm-dd.
func ExpiryDate(now time.Time, years int) string {
	return now.UTC().AddDate(years, 0, 0).Format(ExpiryDateLayout)
}

// ComposeSubtext drops empty parts and joins the rest with SubtextSeparator.
func ComposeSubtext(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, SubtextSeparator)
}

// QRPayload is the literal string encoded in the card's QR code.
func QRPayload(name, identifier string) string {
	return fmt.Sprintf("%s - %s", name, identifier)
}
