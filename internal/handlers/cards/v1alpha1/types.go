package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/cardgen/internal/display"
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/services/card"
	"github.com/KirkDiggler/cardgen/internal/themes"
)

// Requests

// CreateCardRequest is the body of POST /cards
type CreateCardRequest struct {
	Type        string            `json:"type"`
	Orientation string            `json:"orientation,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// UpdateFieldRequest is the body of PATCH /cards/{cardID}/fields
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SetUseDefaultPhotoRequest is the body of PUT /cards/{cardID}/default-photo
type SetUseDefaultPhotoRequest struct {
	UseDefault bool `json:"use_default"`
}

// SetOrientationRequest is the body of PUT /cards/{cardID}/orientation
type SetOrientationRequest struct {
	Orientation string `json:"orientation"`
}

// ExportCardRequest is the body of POST /cards/{cardID}/exports
type ExportCardRequest struct {
	Format  string `json:"format"`
	Quality int    `json:"quality,omitempty"`
}

// Responses

// Category is one selectable category
type Category struct {
	Key     string       `json:"key"`
	Aliases []string     `json:"aliases,omitempty"`
	Theme   themes.Theme `json:"theme"`
}

// CardType describes a card type and its form
type CardType struct {
	Type           entities.CardType      `json:"type"`
	Title          string                 `json:"title"`
	CategoryField  string                 `json:"category_field"`
	Orientations   []entities.Orientation `json:"orientations"`
	Categories     []Category             `json:"categories"`
	Fallback       themes.Theme           `json:"fallback"`
	DefaultFields  map[string]string      `json:"default_fields"`
	DefaultQuality int                    `json:"default_quality"`
	ExpiryYears    int                    `json:"expiry_years"`
}

// ListCardTypesResponse is returned by GET /card-types
type ListCardTypesResponse struct {
	CardTypes []CardType `json:"card_types"`
}

// CardResponse is returned by every card endpoint
type CardResponse struct {
	Card     *entities.Card  `json:"card"`
	Display  *display.Fields `json:"display"`
	Change   string          `json:"change,omitempty"`
	Accepted *bool           `json:"accepted,omitempty"`
}

// Export describes a stored export
type Export struct {
	ID          string    `json:"id"`
	CardID      string    `json:"card_id"`
	Format      string    `json:"format"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	Backend     string    `json:"backend,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
	DownloadURL string    `json:"download_url"`
}

// ExportCardResponse is returned by POST /cards/{cardID}/exports
type ExportCardResponse struct {
	Export Export `json:"export"`
}

// ErrorBody is the payload of every error response
type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// ErrorResponse wraps ErrorBody
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func convertCardTypes(in []*card.CardTypeInfo) []CardType {
	out := make([]CardType, 0, len(in))
	for _, t := range in {
		categories := make([]Category, 0, len(t.Categories))
		for _, c := range t.Categories {
			categories = append(categories, Category{Key: c.Key, Aliases: c.Aliases, Theme: c.Theme})
		}
		out = append(out, CardType{
			Type:           t.Type,
			Title:          t.Title,
			CategoryField:  t.CategoryField,
			Orientations:   t.Orientations,
			Categories:     categories,
			Fallback:       t.Fallback,
			DefaultFields:  t.DefaultFields,
			DefaultQuality: t.DefaultQuality,
			ExpiryYears:    t.ExpiryYears,
		})
	}
	return out
}

func convertExport(in *card.ExportInfo, prefix string) Export {
	return Export{
		ID:          in.ID,
		CardID:      in.CardID,
		Format:      string(in.Format),
		Filename:    in.Filename,
		ContentType: in.ContentType,
		Size:        in.Size,
		Backend:     in.Backend,
		ExpiresAt:   in.ExpiresAt,
		DownloadURL: prefix + "/exports/" + in.ID,
	}
}
