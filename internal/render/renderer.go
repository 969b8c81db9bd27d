// Package render lays a projected card out as a self-contained HTML
// document, the surface the export backends capture.
package render

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"
	"image/color"
	"log/slog"

	"github.com/skip2/go-qrcode"

	"github.com/KirkDiggler/cardgen/internal/display"
	"github.com/KirkDiggler/cardgen/internal/errors"
)

//go:embed templates/card.html.tmpl
var templateFS embed.FS

// CardSelector matches the card element inside a surface
const CardSelector = "#card"

// QRSize is the edge of the QR code in CSS pixels. The PNG is drawn larger
// so high quality exports stay sharp.
const (
	QRSize      = 40
	qrPixelSize = 200
)

// Surface is a rendered card ready for export.
type Surface struct {
	HTML     string
	Fields   *display.Fields
	Width    int
	Height   int
	Selector string
}

type cardData struct {
	*display.Fields
	GradientCSS template.CSS
	PhotoURL    template.URL
	LogoURL     template.URL
	QRDataURL   template.URL
}

// Renderer renders cards with the embedded template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the card template
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/card.html.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse card template")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render lays out fields. A photo reference that is neither a data image
// nor an http(s) URL is dropped in favour of the theme symbol. A payload too
// long for a QR code leaves the code out.
func (r *Renderer) Render(fields *display.Fields) (*Surface, error) {
	if fields == nil {
		return nil, errors.InvalidArgument("fields are required")
	}

	data := cardData{
		Fields:      fields,
		GradientCSS: template.CSS(fields.Gradient),
		LogoURL:     safeImageURL(fields.Theme.LogoRef),
		PhotoURL:    safeImageURL(fields.Photo.Ref),
	}

	qr, err := QRCodePNG(fields.QRPayload, qrPixelSize)
	if err != nil {
		slog.Warn("Skipping QR code", "card_id", fields.CardID, "error", err)
	} else {
		data.QRDataURL = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qr))
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "failed to render card %s", fields.CardID)
	}

	return &Surface{
		HTML:     buf.String(),
		Fields:   fields,
		Width:    fields.Width,
		Height:   fields.Height,
		Selector: CardSelector,
	}, nil
}

// QRCodePNG encodes payload as white modules on a transparent background.
func QRCodePNG(payload string, size int) ([]byte, error) {
	q, err := newQRCode(payload)
	if err != nil {
		return nil, err
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode qr code")
	}
	return png, nil
}

func newQRCode(payload string) (*qrcode.QRCode, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "qr payload cannot be encoded")
	}
	q.ForegroundColor = color.White
	q.BackgroundColor = color.Transparent
	q.DisableBorder = true
	return q, nil
}

// QRCode returns the code for payload so raster backends can draw it.
func QRCode(payload string) (*qrcode.QRCode, error) {
	return newQRCode(payload)
}

func safeImageURL(ref string) template.URL {
	if display.UsablePhotoRef(ref) {
		return template.URL(ref)
	}
	return ""
}
