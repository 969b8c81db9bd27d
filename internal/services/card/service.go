// Package card defines the interface for card editing and export
package card

//go:generate mockgen -destination=mock/mock_service.go -package=cardmock github.com/KirkDiggler/cardgen/internal/services/card Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/cardgen/internal/cardmodel"
	"github.com/KirkDiggler/cardgen/internal/display"
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/render"
	"github.com/KirkDiggler/cardgen/internal/themes"
)

// Service defines the interface for card operations
type Service interface {
	// Catalog
	ListCardTypes(ctx context.Context, input *ListCardTypesInput) (*ListCardTypesOutput, error)

	// Card lifecycle
	CreateCard(ctx context.Context, input *CreateCardInput) (*CreateCardOutput, error)
	GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error)
	DeleteCard(ctx context.Context, input *DeleteCardInput) (*DeleteCardOutput, error)

	// Form binding
	UpdateField(ctx context.Context, input *UpdateFieldInput) (*UpdateFieldOutput, error)
	UploadPhoto(ctx context.Context, input *UploadPhotoInput) (*UploadPhotoOutput, error)
	SetUseDefaultPhoto(ctx context.Context, input *SetUseDefaultPhotoInput) (*SetUseDefaultPhotoOutput, error)
	SetOrientation(ctx context.Context, input *SetOrientationInput) (*SetOrientationOutput, error)

	// Output
	RenderSurface(ctx context.Context, input *RenderSurfaceInput) (*RenderSurfaceOutput, error)
	ExportCard(ctx context.Context, input *ExportCardInput) (*ExportCardOutput, error)
	GetExport(ctx context.Context, input *GetExportInput) (*GetExportOutput, error)
}

// Catalog types

// CategoryInfo is one selectable category of a card type
type CategoryInfo struct {
	Key     string
	Aliases []string
	Theme   themes.Theme
}

// CardTypeInfo describes a card type for form binding
type CardTypeInfo struct {
	Type           entities.CardType
	Title          string
	CategoryField  string
	Orientations   []entities.Orientation
	Categories     []*CategoryInfo
	Fallback       themes.Theme
	DefaultFields  map[string]string
	DefaultQuality int
	ExpiryYears    int
}

// ListCardTypesInput defines the request for listing card types
type ListCardTypesInput struct{}

// ListCardTypesOutput defines the response for listing card types
type ListCardTypesOutput struct {
	CardTypes []*CardTypeInfo
}

// Card lifecycle types

// CreateCardInput defines the request for creating a card
type CreateCardInput struct {
	Type        entities.CardType
	Orientation entities.Orientation // Optional, landscape by default
	Fields      map[string]string    // Optional, applied over the placeholders
}

// CreateCardOutput defines the response for creating a card
type CreateCardOutput struct {
	Card    *entities.Card
	Display *display.Fields
}

// GetCardInput defines the request for getting a card
type GetCardInput struct {
	CardID string
}

// GetCardOutput defines the response for getting a card
type GetCardOutput struct {
	Card    *entities.Card
	Display *display.Fields
}

// DeleteCardInput defines the request for deleting a card
type DeleteCardInput struct {
	CardID string
}

// DeleteCardOutput defines the response for deleting a card
type DeleteCardOutput struct{}

// Form binding types

// UpdateFieldInput defines the request for updating one field
type UpdateFieldInput struct {
	CardID string
	Field  string
	Value  string
}

// UpdateFieldOutput defines the response for updating one field
type UpdateFieldOutput struct {
	Card    *entities.Card
	Display *display.Fields
	Change  cardmodel.Change
}

// UploadPhotoInput defines the request for uploading a photo
type UploadPhotoInput struct {
	CardID string
	Data   []byte
}

// UploadPhotoOutput defines the response for uploading a photo. Accepted is
// false when the upload could not be decoded and the card fell back to its
// symbol.
type UploadPhotoOutput struct {
	Card     *entities.Card
	Display  *display.Fields
	Accepted bool
}

// SetUseDefaultPhotoInput defines the request for toggling the symbol
type SetUseDefaultPhotoInput struct {
	CardID     string
	UseDefault bool
}

// SetUseDefaultPhotoOutput defines the response for toggling the symbol
type SetUseDefaultPhotoOutput struct {
	Card    *entities.Card
	Display *display.Fields
}

// SetOrientationInput defines the request for changing orientation
type SetOrientationInput struct {
	CardID      string
	Orientation entities.Orientation
}

// SetOrientationOutput defines the response for changing orientation
type SetOrientationOutput struct {
	Card    *entities.Card
	Display *display.Fields
}

// Output types

// RenderSurfaceInput defines the request for rendering a card
type RenderSurfaceInput struct {
	CardID string
}

// RenderSurfaceOutput defines the response for rendering a card
type RenderSurfaceOutput struct {
	Surface *render.Surface
}

// ExportCardInput defines the request for exporting a card
type ExportCardInput struct {
	CardID  string
	Format  export.Format
	Quality int // Optional, the card's quality when zero
}

// ExportCardOutput defines the response for exporting a card
type ExportCardOutput struct {
	Export *ExportInfo
}

// ExportInfo describes a stored export without its bytes
type ExportInfo struct {
	ID          string
	CardID      string
	Format      export.Format
	Filename    string
	ContentType string
	Size        int
	Backend     string
	ExpiresAt   time.Time
}

// GetExportInput defines the request for downloading an export
type GetExportInput struct {
	ExportID string
}

// GetExportOutput defines the response for downloading an export
type GetExportOutput struct {
	Export *ExportInfo
	Data   []byte
}
