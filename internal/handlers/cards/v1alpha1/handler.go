// Package v1alpha1 serves the card editing API over HTTP
package v1alpha1

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/photos"
	"github.com/KirkDiggler/cardgen/internal/services/card"
)

// PathPrefix is where Routes is mounted
const PathPrefix = "/v1alpha1"

// PhotoFormField is the multipart field photo uploads are read from
const PhotoFormField = "photo"

const maxJSONBody = 64 << 10

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CardService card.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CardService == nil {
		return errors.InvalidArgument("card service is required")
	}
	return nil
}

// Handler implements the card HTTP API
type Handler struct {
	cardService card.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		cardService: cfg.CardService,
	}, nil
}

// Routes returns the API router, to be mounted at PathPrefix
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/card-types", h.ListCardTypes)

	r.Route("/cards", func(r chi.Router) {
		r.Post("/", h.CreateCard)
		r.Route("/{cardID}", func(r chi.Router) {
			r.Get("/", h.GetCard)
			r.Delete("/", h.DeleteCard)
			r.Patch("/fields", h.UpdateField)
			r.Put("/photo", h.UploadPhoto)
			r.Put("/default-photo", h.SetUseDefaultPhoto)
			r.Put("/orientation", h.SetOrientation)
			r.Get("/surface", h.RenderSurface)
			r.Post("/exports", h.ExportCard)
		})
	})

	r.Get("/exports/{exportID}", h.GetExport)

	return r
}

// ListCardTypes returns every card type with its categories
func (h *Handler) ListCardTypes(w http.ResponseWriter, r *http.Request) {
	out, err := h.cardService.ListCardTypes(r.Context(), &card.ListCardTypesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &ListCardTypesResponse{CardTypes: convertCardTypes(out.CardTypes)})
}

// CreateCard creates a card
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req CreateCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Type == "" {
		writeError(w, r, errors.InvalidArgument("type is required"))
		return
	}

	out, err := h.cardService.CreateCard(r.Context(), &card.CreateCardInput{
		Type:        entities.CardType(req.Type),
		Orientation: entities.Orientation(req.Orientation),
		Fields:      req.Fields,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", PathPrefix+"/cards/"+out.Card.ID)
	writeJSON(w, http.StatusCreated, &CardResponse{Card: out.Card, Display: out.Display})
}

// GetCard returns a card and its display fields
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	out, err := h.cardService.GetCard(r.Context(), &card.GetCardInput{CardID: chi.URLParam(r, "cardID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &CardResponse{Card: out.Card, Display: out.Display})
}

// DeleteCard removes a card
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	_, err := h.cardService.DeleteCard(r.Context(), &card.DeleteCardInput{CardID: chi.URLParam(r, "cardID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateField applies one form edit
func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req UpdateFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.cardService.UpdateField(r.Context(), &card.UpdateFieldInput{
		CardID: chi.URLParam(r, "cardID"),
		Field:  req.Field,
		Value:  req.Value,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &CardResponse{
		Card:    out.Card,
		Display: out.Display,
		Change:  out.Change.String(),
	})
}

// UploadPhoto accepts the photo either as the raw request body or as the
// "photo" field of a multipart form.
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	data, err := readPhoto(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.cardService.UploadPhoto(r.Context(), &card.UploadPhotoInput{
		CardID: chi.URLParam(r, "cardID"),
		Data:   data,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	accepted := out.Accepted
	writeJSON(w, http.StatusOK, &CardResponse{
		Card:     out.Card,
		Display:  out.Display,
		Accepted: &accepted,
	})
}

// SetUseDefaultPhoto toggles the theme symbol
func (h *Handler) SetUseDefaultPhoto(w http.ResponseWriter, r *http.Request) {
	var req SetUseDefaultPhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.cardService.SetUseDefaultPhoto(r.Context(), &card.SetUseDefaultPhotoInput{
		CardID:     chi.URLParam(r, "cardID"),
		UseDefault: req.UseDefault,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &CardResponse{Card: out.Card, Display: out.Display})
}

// SetOrientation switches the card layout
func (h *Handler) SetOrientation(w http.ResponseWriter, r *http.Request) {
	var req SetOrientationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.cardService.SetOrientation(r.Context(), &card.SetOrientationInput{
		CardID:      chi.URLParam(r, "cardID"),
		Orientation: entities.Orientation(req.Orientation),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &CardResponse{Card: out.Card, Display: out.Display})
}

// RenderSurface serves the card preview as HTML
func (h *Handler) RenderSurface(w http.ResponseWriter, r *http.Request) {
	out, err := h.cardService.RenderSurface(r.Context(), &card.RenderSurfaceInput{CardID: chi.URLParam(r, "cardID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out.Surface.HTML)
}

// ExportCard captures the card and stores the file for download
func (h *Handler) ExportCard(w http.ResponseWriter, r *http.Request) {
	var req ExportCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.cardService.ExportCard(r.Context(), &card.ExportCardInput{
		CardID:  chi.URLParam(r, "cardID"),
		Format:  format,
		Quality: req.Quality,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := &ExportCardResponse{Export: convertExport(out.Export, PathPrefix)}
	w.Header().Set("Location", resp.Export.DownloadURL)
	writeJSON(w, http.StatusCreated, resp)
}

// GetExport downloads a stored export as an attachment
func (h *Handler) GetExport(w http.ResponseWriter, r *http.Request) {
	out, err := h.cardService.GetExport(r.Context(), &card.GetExportInput{ExportID: chi.URLParam(r, "exportID")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", out.Export.ContentType)
	w.Header().Set("Content-Length", fmt.Sprint(len(out.Data)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": out.Export.Filename,
	}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Data)
}

func readPhoto(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	// one byte over the limit so the service can tell an oversized upload apart
	limit := int64(photos.MaxUploadBytes) + 1

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(io.LimitReader(r.Body, limit))
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read photo")
		}
		return data, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, limit+1<<20)
	file, _, err := r.FormFile(PhotoFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			return nil, errors.TooLargef("photo exceeds %d bytes", photos.MaxUploadBytes)
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "photo form field is required")
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, limit))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read photo")
	}
	return data, nil
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", attrs...)
	} else {
		slog.Debug("Request rejected", attrs...)
	}

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = clientMessage(err)
	}

	writeJSON(w, status, &ErrorResponse{Error: ErrorBody{
		Code:    string(code),
		Message: message,
		Meta:    errors.GetMeta(err),
	}})
}

// clientMessage joins the messages of every *errors.Error in the chain,
// outermost first.
func clientMessage(err error) string {
	var parts []string
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if ce, ok := e.(*errors.Error); ok && ce.Message != "" {
			parts = append(parts, ce.Message)
		}
	}
	if len(parts) == 0 {
		return errors.GetMessage(err)
	}
	return strings.Join(parts, ": ")
}
