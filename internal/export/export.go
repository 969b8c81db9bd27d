// Package export captures rendered card surfaces as PNG or PDF files.
//
// Two backends exist. The chrome backend drives a headless browser over the
// DevTools protocol and is pixel-faithful to the HTML surface. The raster
// backend redraws the card with a 2D canvas and needs no browser; it only
// produces PNG.
package export

//go:generate mockgen -destination=mock/mock_exporter.go -package=exportmock github.com/KirkDiggler/cardgen/internal/export Exporter,Stage

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/render"
)

// Format of an exported file
type Format string

// Formats
const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat accepts "png" or "pdf" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatPDF:
		return f, nil
	}
	return "", errors.InvalidArgumentf("unsupported export format %q", s)
}

// ContentType is the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "image/png"
}

// Extension is the file extension without the dot
func (f Format) Extension() string {
	return string(f)
}

// Quality bounds. Quality is the device pixel ratio of a PNG capture.
const (
	MinQuality = 1
	MaxQuality = 8
)

// Backend names
const (
	BackendAuto   = "auto"
	BackendChrome = "chrome"
	BackendRaster = "raster"
)

// DefaultTimeout bounds a single export
const DefaultTimeout = 30 * time.Second

// ValidateCapture checks a capture request before any backend work starts
func ValidateCapture(format Format, quality int) error {
	vb := errors.NewValidationBuilder()
	if format != FormatPNG && format != FormatPDF {
		vb.Fieldf("format", "unsupported export format %q", format)
	}
	errors.ValidateRange("quality", quality, MinQuality, MaxQuality, vb)
	return vb.Build()
}

func validateSurface(surface *render.Surface) error {
	if surface == nil || surface.Fields == nil {
		return errors.InvalidArgument("surface is required")
	}
	if surface.Width <= 0 || surface.Height <= 0 {
		return errors.InvalidArgumentf("surface size %dx%d is invalid", surface.Width, surface.Height)
	}
	return nil
}

// Exporter loads surfaces into a backend
type Exporter interface {
	// Name identifies the backend
	Name() string

	// Prepare loads the surface and returns once it is stable: document
	// parsed, fonts ready and images decoded. The stage must be closed.
	Prepare(ctx context.Context, surface *render.Surface) (Stage, error)
}

// Stage is a prepared surface that can be captured any number of times
type Stage interface {
	// Capture serializes the surface. Quality is the PNG pixel ratio and
	// must be within MinQuality and MaxQuality. Backends that cannot produce
	// format return Unimplemented.
	Capture(ctx context.Context, format Format, quality int) ([]byte, error)

	// Close releases the backend resources held by the stage
	Close() error
}

// Config selects and configures a backend
type Config struct {
	Backend    string
	ChromePath string
	Timeout    time.Duration
}

// Validate checks the config and fills defaults
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Backend == "" {
		c.Backend = BackendAuto
	}
	errors.ValidateEnum("backend", c.Backend, []string{BackendAuto, BackendChrome, BackendRaster}, vb)
	if c.Timeout < 0 {
		vb.InvalidField("timeout", "must not be negative")
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return vb.Build()
}

// New builds the configured backend. Auto picks chrome when a browser
// binary can be found and raster otherwise.
func New(cfg *Config) (Exporter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid export config")
	}

	switch cfg.Backend {
	case BackendRaster:
		return NewRaster(cfg.Timeout)
	case BackendChrome:
		path := cfg.ChromePath
		if path == "" {
			path = DetectChromePath()
		}
		if path == "" {
			return nil, errors.FailedPreconditionf("chrome backend requested but no browser binary was found")
		}
		return NewChrome(path, cfg.Timeout), nil
	}

	path := cfg.ChromePath
	if path == "" {
		path = DetectChromePath()
	}
	if path != "" {
		slog.Info("Using chrome export backend", "path", path)
		return NewChrome(path, cfg.Timeout), nil
	}
	slog.Info("No browser found, using raster export backend")
	return NewRaster(cfg.Timeout)
}

func wrapExportError(ctx context.Context, err error, backend string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.FromContext(ctxErr, backend+" export did not finish")
	}
	if errors.GetCode(err) != errors.CodeInternal {
		return err
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, backend+" export failed")
}
