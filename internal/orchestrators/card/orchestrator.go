// Package card implements the card orchestrator
package card

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/cardgen/internal/cardmodel"
	"github.com/KirkDiggler/cardgen/internal/display"
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/photos"
	"github.com/KirkDiggler/cardgen/internal/pkg/clock"
	"github.com/KirkDiggler/cardgen/internal/pkg/idgen"
	"github.com/KirkDiggler/cardgen/internal/profiles"
	"github.com/KirkDiggler/cardgen/internal/render"
	"github.com/KirkDiggler/cardgen/internal/repositories/artifacts"
	"github.com/KirkDiggler/cardgen/internal/repositories/cards"
	"github.com/KirkDiggler/cardgen/internal/services/card"
)

// Config holds the dependencies for the card orchestrator
type Config struct {
	CardRepo      cards.Repository
	ArtifactRepo  artifacts.Repository
	Renderer      *render.Renderer
	Exporter      export.Exporter
	Photos        photos.Processor
	Clock         clock.Clock
	Numbers       idgen.NumberGenerator
	CardIDs       idgen.Generator
	ExportIDs     idgen.Generator
	EventBus      events.EventBus
	ExportTimeout time.Duration // Optional, export.DefaultTimeout when zero
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CardRepo == nil {
		vb.RequiredField("CardRepo")
	}
	if c.ArtifactRepo == nil {
		vb.RequiredField("ArtifactRepo")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Exporter == nil {
		vb.RequiredField("Exporter")
	}
	if c.Photos == nil {
		vb.RequiredField("Photos")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Numbers == nil {
		vb.RequiredField("Numbers")
	}
	if c.CardIDs == nil {
		vb.RequiredField("CardIDs")
	}
	if c.ExportIDs == nil {
		vb.RequiredField("ExportIDs")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.ExportTimeout < 0 {
		vb.InvalidField("ExportTimeout", "must not be negative")
	}

	return vb.Build()
}

// Orchestrator implements the card.Service interface
type Orchestrator struct {
	cardRepo      cards.Repository
	artifactRepo  artifacts.Repository
	renderer      *render.Renderer
	exporter      export.Exporter
	photos        photos.Processor
	clock         clock.Clock
	numbers       idgen.NumberGenerator
	cardIDs       idgen.Generator
	exportIDs     idgen.Generator
	eventBus      events.EventBus
	exportTimeout time.Duration

	subscriptionID string

	// one mutex per card so edits to a card apply in arrival order
	locks sync.Map
}

// New creates a new card orchestrator and subscribes it to category changes
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.ExportTimeout
	if timeout == 0 {
		timeout = export.DefaultTimeout
	}

	o := &Orchestrator{
		cardRepo:      cfg.CardRepo,
		artifactRepo:  cfg.ArtifactRepo,
		renderer:      cfg.Renderer,
		exporter:      cfg.Exporter,
		photos:        cfg.Photos,
		clock:         cfg.Clock,
		numbers:       cfg.Numbers,
		cardIDs:       cfg.CardIDs,
		exportIDs:     cfg.ExportIDs,
		eventBus:      cfg.EventBus,
		exportTimeout: timeout,
	}
	o.subscriptionID = o.eventBus.SubscribeFunc(EventCategoryChanged, 0, o.onCategoryChanged)

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ card.Service = (*Orchestrator)(nil)

// Close unsubscribes from the event bus
func (o *Orchestrator) Close() error {
	return o.eventBus.Unsubscribe(o.subscriptionID)
}

// onCategoryChanged draws a new identifier for the card in the event. It
// runs synchronously inside Publish, before the card is persisted.
func (o *Orchestrator) onCategoryChanged(_ context.Context, event events.Event) error {
	entity, ok := event.Source().(*CardEntity)
	if !ok || entity.Card == nil {
		return errors.Internalf("category change published for unexpected source %T", event.Source())
	}

	previous := entity.Card.Identifier
	if err := o.assignIdentifier(entity.Card); err != nil {
		return err
	}

	slog.Debug("Card identifier regenerated",
		"card_id", entity.Card.ID,
		"category", entity.Card.CategoryKey,
		"previous", previous,
		"identifier", entity.Card.Identifier,
	)
	return nil
}

func (o *Orchestrator) assignIdentifier(c *entities.Card) error {
	profile, ok := profiles.Lookup(c.Type)
	if !ok {
		return errors.InvalidArgumentf("unknown card type %q", c.Type)
	}

	theme := profile.Catalog.ResolveTheme(c.CategoryKey)
	identifier, err := o.numbers.Generate(profile.Prefix(theme))
	if err != nil {
		return errors.Wrapf(err, "failed to generate identifier for card %s", c.ID)
	}

	c.Identifier = identifier
	return nil
}

func (o *Orchestrator) lock(cardID string) *sync.Mutex {
	v, _ := o.locks.LoadOrStore(cardID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

// release unlocks mu and, when the card is gone, drops its lock entry so
// unknown IDs never accumulate.
func (o *Orchestrator) release(cardID string, mu *sync.Mutex, gone bool) {
	if gone {
		o.locks.CompareAndDelete(cardID, mu)
	}
	mu.Unlock()
}

// loadLocked locks the card and loads it. The caller must call the returned
// unlock once done.
func (o *Orchestrator) loadLocked(ctx context.Context, cardID string) (*entities.Card, *profiles.Profile, func(), error) {
	mu := o.lock(cardID)

	c, profile, err := o.load(ctx, cardID)
	if err != nil {
		o.release(cardID, mu, errors.IsNotFound(err))
		return nil, nil, nil, err
	}

	return c, profile, mu.Unlock, nil
}

func (o *Orchestrator) load(ctx context.Context, cardID string) (*entities.Card, *profiles.Profile, error) {
	out, err := o.cardRepo.Get(ctx, &cards.GetInput{ID: cardID})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get card %s", cardID)
	}

	profile, ok := profiles.Lookup(out.Card.Type)
	if !ok {
		return nil, nil, errors.Internalf("card %s has unknown type %q", cardID, out.Card.Type)
	}

	return out.Card, profile, nil
}

func (o *Orchestrator) save(ctx context.Context, c *entities.Card, now time.Time) error {
	c.UpdatedAt = now.Unix()
	if _, err := o.cardRepo.Update(ctx, &cards.UpdateInput{Card: c}); err != nil {
		return errors.Wrapf(err, "failed to update card %s", c.ID)
	}
	return nil
}

func project(c *entities.Card, profile *profiles.Profile, now time.Time) *display.Fields {
	return display.Project(c, profile, profile.Catalog.ResolveTheme(c.CategoryKey), now)
}

func requireCardID(cardID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("cardID", cardID, vb)
	return vb.Build()
}

// Catalog

// ListCardTypes returns every card type with its categories
func (o *Orchestrator) ListCardTypes(_ context.Context, input *card.ListCardTypesInput) (*card.ListCardTypesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	all := profiles.All()
	out := make([]*card.CardTypeInfo, 0, len(all))
	for _, p := range all {
		info := &card.CardTypeInfo{
			Type:           p.Type,
			Title:          p.Title,
			CategoryField:  p.CategoryField,
			Orientations:   p.Orientations(),
			Fallback:       p.Catalog.Fallback(),
			DefaultFields:  make(map[string]string, len(p.DefaultFields)),
			DefaultQuality: p.DefaultQuality,
			ExpiryYears:    p.ExpiryYears,
		}
		for k, v := range p.DefaultFields {
			info.DefaultFields[k] = v
		}
		for _, cat := range p.Catalog.Categories() {
			info.Categories = append(info.Categories, &card.CategoryInfo{
				Key:     cat.Key(),
				Aliases: p.Catalog.Aliases(cat),
				Theme:   p.Catalog.Theme(cat),
			})
		}
		out = append(out, info)
	}

	return &card.ListCardTypesOutput{CardTypes: out}, nil
}

// Card lifecycle

// CreateCard creates a card with the type's placeholders, applies any
// initial fields and draws its identifier once.
func (o *Orchestrator) CreateCard(ctx context.Context, input *card.CreateCardInput) (*card.CreateCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	profile, ok := profiles.Lookup(input.Type)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown card type %q", input.Type).
			WithMeta("card_type", string(input.Type))
	}

	orientation := input.Orientation
	if orientation == "" {
		orientation = entities.OrientationLandscape
	}
	if !profile.Supports(orientation) {
		return nil, errors.InvalidArgumentf("%s cards cannot be %s", profile.Type, orientation)
	}

	now := o.clock.Now()
	c := profile.NewCard(o.cardIDs.Generate(), orientation, now.Unix())

	names := make([]string, 0, len(input.Fields))
	for name := range input.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cardmodel.ApplyField(c, profile, name, input.Fields[name])
	}

	if err := o.assignIdentifier(c); err != nil {
		return nil, err
	}

	if _, err := o.cardRepo.Create(ctx, &cards.CreateInput{Card: c}); err != nil {
		return nil, errors.Wrap(err, "failed to create card")
	}

	slog.Info("Card created",
		"card_id", c.ID,
		"card_type", c.Type,
		"category", c.CategoryKey,
		"identifier", c.Identifier,
	)

	return &card.CreateCardOutput{
		Card:    c,
		Display: project(c, profile, now),
	}, nil
}

// GetCard returns a card and its display fields as of now
func (o *Orchestrator) GetCard(ctx context.Context, input *card.GetCardInput) (*card.GetCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCardID(input.CardID); err != nil {
		return nil, err
	}

	c, profile, err := o.load(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	return &card.GetCardOutput{
		Card:    c,
		Display: project(c, profile, o.clock.Now()),
	}, nil
}

// DeleteCard removes a card
func (o *Orchestrator) DeleteCard(ctx context.Context, input *card.DeleteCardInput) (*card.DeleteCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCardID(input.CardID); err != nil {
		return nil, err
	}

	mu := o.lock(input.CardID)

	_, err := o.cardRepo.Delete(ctx, &cards.DeleteInput{ID: input.CardID})
	if err != nil {
		o.release(input.CardID, mu, errors.IsNotFound(err))
		return nil, errors.Wrapf(err, "failed to delete card %s", input.CardID)
	}
	o.release(input.CardID, mu, true)

	slog.Info("Card deleted", "card_id", input.CardID)

	return &card.DeleteCardOutput{}, nil
}

// Form binding

// UpdateField applies one form edit. Changing the category publishes
// card.category_changed, whose handler draws a new identifier.
func (o *Orchestrator) UpdateField(ctx context.Context, input *card.UpdateFieldInput) (*card.UpdateFieldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("cardID", input.CardID, vb)
	errors.ValidateRequired("field", input.Field, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c, profile, unlock, err := o.loadLocked(ctx, input.CardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := o.clock.Now()
	change := cardmodel.ApplyField(c, profile, input.Field, input.Value)

	if change == cardmodel.ChangeCategory {
		event := events.NewGameEvent(EventCategoryChanged, &CardEntity{Card: c}, nil)
		if err := o.eventBus.Publish(ctx, event); err != nil {
			return nil, errors.Wrapf(err, "failed to apply category change to card %s", c.ID)
		}
	}

	if change != cardmodel.ChangeNone {
		if err := o.save(ctx, c, now); err != nil {
			return nil, err
		}
	}

	slog.Debug("Card field updated",
		"card_id", c.ID,
		"field", input.Field,
		"change", change.String(),
	)

	return &card.UpdateFieldOutput{
		Card:    c,
		Display: project(c, profile, now),
		Change:  change,
	}, nil
}

// UploadPhoto runs the upload through the photo pipeline. Uploads that
// cannot be decoded clear the photo so the theme symbol shows; only
// oversized uploads are rejected.
func (o *Orchestrator) UploadPhoto(ctx context.Context, input *card.UploadPhotoInput) (*card.UploadPhotoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCardID(input.CardID); err != nil {
		return nil, err
	}
	if len(input.Data) > photos.MaxUploadBytes {
		return nil, errors.TooLargef("photo is %d bytes, limit is %d", len(input.Data), photos.MaxUploadBytes)
	}

	c, profile, unlock, err := o.loadLocked(ctx, input.CardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	accepted := true
	ref, err := o.photos.Process(input.Data)
	switch {
	case err != nil && errors.GetCode(err) == errors.CodeTooLarge:
		return nil, err
	case err != nil:
		slog.Warn("Photo upload unusable, showing symbol",
			"card_id", c.ID,
			"bytes", len(input.Data),
			"error", err,
		)
		c.PhotoRef = ""
		accepted = false
	default:
		cardmodel.ApplyField(c, profile, entities.FieldPhoto, ref)
	}

	now := o.clock.Now()
	if err := o.save(ctx, c, now); err != nil {
		return nil, err
	}

	return &card.UploadPhotoOutput{
		Card:     c,
		Display:  project(c, profile, now),
		Accepted: accepted,
	}, nil
}

// SetUseDefaultPhoto toggles the symbol without touching the stored photo
func (o *Orchestrator) SetUseDefaultPhoto(ctx context.Context, input *card.SetUseDefaultPhotoInput) (*card.SetUseDefaultPhotoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCardID(input.CardID); err != nil {
		return nil, err
	}

	c, profile, unlock, err := o.loadLocked(ctx, input.CardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := o.clock.Now()
	c.UseDefaultPhoto = input.UseDefault
	if err := o.save(ctx, c, now); err != nil {
		return nil, err
	}

	return &card.SetUseDefaultPhotoOutput{
		Card:    c,
		Display: project(c, profile, now),
	}, nil
}

// SetOrientation switches layout. Only typology cards have a portrait
// layout.
func (o *Orchestrator) SetOrientation(ctx context.Context, input *card.SetOrientationInput) (*card.SetOrientationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCardID(input.CardID); err != nil {
		return nil, err
	}

	c, profile, unlock, err := o.loadLocked(ctx, input.CardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !profile.Supports(input.Orientation) {
		return nil, errors.InvalidArgumentf("%s cards cannot be %q", profile.Type, input.Orientation).
			WithMeta("card_id", c.ID)
	}

	now := o.clock.Now()
	c.Orientation = input.Orientation
	if err := o.save(ctx, c, now); err != nil {
		return nil, err
	}

	return &card.SetOrientationOutput{
		Card:    c,
		Display: project(c, profile, now),
	}, nil
}

// Output

// RenderSurface renders the card's HTML surface for preview
func (o *Orchestrator) RenderSurface(ctx context.Context, input *card.RenderSurfaceInput) (*card.RenderSurfaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCardID(input.CardID); err != nil {
		return nil, err
	}

	c, profile, err := o.load(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	surface, err := o.renderer.Render(project(c, profile, o.clock.Now()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render card %s", c.ID)
	}

	return &card.RenderSurfaceOutput{Surface: surface}, nil
}

// ExportCard renders the card, captures it and stores the file for
// download. Once started the export ignores caller cancellation and is
// bounded by the export timeout instead.
func (o *Orchestrator) ExportCard(ctx context.Context, input *card.ExportCardInput) (*card.ExportCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCardID(input.CardID); err != nil {
		return nil, err
	}

	c, profile, err := o.load(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	quality := input.Quality
	if quality == 0 {
		quality = c.Quality
	}
	if quality == 0 {
		quality = profile.DefaultQuality
	}
	if err := export.ValidateCapture(input.Format, quality); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.exportTimeout)
	defer cancel()

	start := o.clock.Now()
	surface, err := o.renderer.Render(project(c, profile, start))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render card %s", c.ID)
	}

	data, err := o.capture(ctx, surface, input.Format, quality)
	if err != nil {
		slog.Error("Card export failed",
			"card_id", c.ID,
			"format", input.Format,
			"quality", quality,
			"backend", o.exporter.Name(),
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to export card %s", c.ID)
	}

	saved, err := o.artifactRepo.Save(ctx, &artifacts.SaveInput{Artifact: &artifacts.Artifact{
		ID:          o.exportIDs.Generate(),
		CardID:      c.ID,
		Format:      string(input.Format),
		Filename:    Filename(c, profile, input.Format),
		ContentType: input.Format.ContentType(),
		Data:        data,
	}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store export of card %s", c.ID)
	}

	info := exportInfo(saved.Artifact)
	info.Backend = o.exporter.Name()

	slog.Info("Card exported",
		"card_id", c.ID,
		"export_id", info.ID,
		"format", info.Format,
		"quality", quality,
		"bytes", info.Size,
		"backend", info.Backend,
		"duration", o.clock.Now().Sub(start),
	)

	return &card.ExportCardOutput{Export: info}, nil
}

func (o *Orchestrator) capture(ctx context.Context, surface *render.Surface, format export.Format, quality int) ([]byte, error) {
	stage, err := o.exporter.Prepare(ctx, surface)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := stage.Close(); err != nil {
			slog.Warn("Failed to release export stage", "error", err)
		}
	}()

	return stage.Capture(ctx, format, quality)
}

// GetExport returns a stored export and its bytes
func (o *Orchestrator) GetExport(ctx context.Context, input *card.GetExportInput) (*card.GetExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("exportID", input.ExportID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.artifactRepo.Get(ctx, &artifacts.GetInput{ID: input.ExportID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get export %s", input.ExportID)
	}

	return &card.GetExportOutput{
		Export: exportInfo(out.Artifact),
		Data:   out.Artifact.Data,
	}, nil
}

func exportInfo(a *artifacts.Artifact) *card.ExportInfo {
	return &card.ExportInfo{
		ID:          a.ID,
		CardID:      a.CardID,
		Format:      export.Format(a.Format),
		Filename:    a.Filename,
		ContentType: a.ContentType,
		Size:        len(a.Data),
		ExpiresAt:   a.ExpiresAt,
	}
}
