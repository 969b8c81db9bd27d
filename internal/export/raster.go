package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/KirkDiggler/cardgen/internal/display"
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/render"
)

const (
	cornerRadius = 10.0
	headerHeight = 36.0
	ellipsis     = "…"
)

var (
	overlay    = color.RGBA{R: 255, G: 255, B: 255, A: 51}
	frame      = color.RGBA{R: 255, G: 255, B: 255, A: 204}
	highlight  = color.RGBA{R: 0xfd, G: 0xe0, B: 0x47, A: 0xff}
	softWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	shadowText = color.RGBA{R: 0, G: 0, B: 0, A: 60}
)

type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font
	mono    *truetype.Font
}

// Raster redraws cards on a 2D canvas. Remote images such as faction logos
// are not fetched; only data URI photos are drawn.
type Raster struct {
	fonts   fontSet
	timeout time.Duration
}

var _ Exporter = (*Raster)(nil)

// NewRaster parses the bundled Go fonts
func NewRaster(timeout time.Duration) (*Raster, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var fs fontSet
	for _, f := range []struct {
		dst **truetype.Font
		ttf []byte
	}{
		{&fs.regular, goregular.TTF},
		{&fs.bold, gobold.TTF},
		{&fs.italic, goitalic.TTF},
		{&fs.mono, gomono.TTF},
	} {
		parsed, err := truetype.Parse(f.ttf)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse bundled font")
		}
		*f.dst = parsed
	}

	return &Raster{fonts: fs, timeout: timeout}, nil
}

// Name returns "raster"
func (r *Raster) Name() string {
	return BackendRaster
}

// Prepare decodes the photo and QR code once so captures only draw
func (r *Raster) Prepare(ctx context.Context, surface *render.Surface) (Stage, error) {
	if err := validateSurface(surface); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "raster prepare not started")
	}

	stage := &rasterStage{
		surface: surface,
		fonts:   r.fonts,
		timeout: r.timeout,
		photo:   decodeDataImage(surface.Fields.Photo.Ref),
	}
	if q, err := render.QRCode(surface.Fields.QRPayload); err == nil {
		stage.qr = q
	}

	return stage, nil
}

type rasterStage struct {
	surface *render.Surface
	fonts   fontSet
	timeout time.Duration
	photo   image.Image
	qr      *qrcode.QRCode
}

// Capture draws the card at quality times its CSS size. PDF is not
// supported.
func (s *rasterStage) Capture(ctx context.Context, format Format, quality int) ([]byte, error) {
	if err := ValidateCapture(format, quality); err != nil {
		return nil, err
	}
	if format != FormatPNG {
		return nil, errors.Unimplementedf("raster backend cannot produce %s", format)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	c := newCanvas(s, float64(quality))
	if s.surface.Fields.Orientation == entities.OrientationPortrait {
		c.drawPortrait()
	} else {
		c.drawLandscape()
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "raster export did not finish")
	}

	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to encode png")
	}

	return buf.Bytes(), nil
}

// Close is a no-op
func (s *rasterStage) Close() error {
	return nil
}

// canvas works in CSS pixels and scales every coordinate by s.
type canvas struct {
	dc     *gg.Context
	s      float64
	w, h   float64
	fields *display.Fields
	fonts  fontSet
	img    image.Image
	code   *qrcode.QRCode
}

func newCanvas(stage *rasterStage, scale float64) *canvas {
	w, h := float64(stage.surface.Width), float64(stage.surface.Height)
	return &canvas{
		dc:     gg.NewContext(int(w*scale), int(h*scale)),
		s:      scale,
		w:      w,
		h:      h,
		fields: stage.surface.Fields,
		fonts:  stage.fonts,
		img:    stage.photo,
		code:   stage.qr,
	}
}

func (c *canvas) px(v float64) float64 {
	return v * c.s
}

func (c *canvas) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size * c.s, Hinting: font.HintingFull})
}

func (c *canvas) background() {
	colors := c.fields.Theme.Colors()
	grad := gg.NewLinearGradient(0, 0, c.px(c.w), c.px(c.h))
	switch len(colors) {
	case 0:
		grad.AddColorStop(0, color.Gray{Y: 0x9c})
	case 1:
		grad.AddColorStop(0, colors[0])
	default:
		for i, col := range colors {
			grad.AddColorStop(float64(i)/float64(len(colors)-1), col)
		}
	}

	c.dc.DrawRoundedRectangle(0, 0, c.px(c.w), c.px(c.h), c.px(cornerRadius))
	c.dc.SetFillStyle(grad)
	c.dc.Fill()
}

func (c *canvas) header() {
	c.dc.Push()
	c.dc.DrawRoundedRectangle(0, 0, c.px(c.w), c.px(c.h), c.px(cornerRadius))
	c.dc.Clip()
	c.dc.DrawRectangle(0, 0, c.px(c.w), c.px(headerHeight))
	c.dc.SetColor(overlay)
	c.dc.Fill()
	c.dc.ResetClip()
	c.dc.Pop()

	mid := headerHeight / 2
	c.text(c.fields.Title, c.fonts.bold, 12, 8, mid, 0, 0.5, color.White, c.w*0.6)
	c.text("#"+c.fields.Identifier, c.fonts.mono, 10, c.w-8, mid, 1, 0.5, color.White, c.w*0.35)

	if c.fields.Visibility != "" {
		c.text(c.fields.Visibility, c.fonts.bold, 8, c.w-6, headerHeight+8, 1, 0.5, highlight, 60)
	}
}

// text draws s anchored at (x, y) in CSS pixels, cut with an ellipsis to
// fit maxWidth.
func (c *canvas) text(s string, f *truetype.Font, size, x, y, ax, ay float64, col color.Color, maxWidth float64) {
	if s == "" {
		return
	}
	c.dc.SetFontFace(c.face(f, size))
	s = c.fit(s, c.px(maxWidth))
	c.dc.SetColor(shadowText)
	c.dc.DrawStringAnchored(s, c.px(x)+c.s*0.5, c.px(y)+c.s*0.5, ax, ay)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, c.px(x), c.px(y), ax, ay)
}

func (c *canvas) fit(s string, maxWidth float64) string {
	if w, _ := c.dc.MeasureString(s); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if w, _ := c.dc.MeasureString(candidate); w <= maxWidth {
			return candidate
		}
	}
	return ""
}

// photo fills the box with the uploaded photo or the symbol fallback. The
// symbol is drawn as the headline initial since the bundled fonts carry no
// emoji.
func (c *canvas) photo(x, y, w, h float64, round bool) {
	c.dc.Push()
	if round {
		c.dc.DrawCircle(c.px(x+w/2), c.px(y+h/2), c.px(w/2))
	} else {
		c.dc.DrawRoundedRectangle(c.px(x), c.px(y), c.px(w), c.px(h), c.px(4))
	}
	c.dc.Clip()

	c.dc.DrawRectangle(c.px(x), c.px(y), c.px(w), c.px(h))
	c.dc.SetColor(overlay)
	c.dc.Fill()

	if c.img != nil {
		fitted := imaging.Fill(c.img, int(c.px(w)), int(c.px(h)), imaging.Top, imaging.Lanczos)
		c.dc.DrawImage(fitted, int(c.px(x)), int(c.px(y)))
	} else {
		initial := "?"
		if r, _ := utf8.DecodeRuneInString(c.fields.Headline); r != utf8.RuneError {
			initial = string(r)
		}
		c.text(initial, c.fonts.bold, h*0.45, x+w/2, y+h/2, 0.5, 0.5, softWhite, w)
	}
	c.dc.ResetClip()
	c.dc.Pop()

	c.dc.SetColor(frame)
	c.dc.SetLineWidth(c.s)
	if round {
		c.dc.DrawCircle(c.px(x+w/2), c.px(y+h/2), c.px(w/2))
	} else {
		c.dc.DrawRoundedRectangle(c.px(x), c.px(y), c.px(w), c.px(h), c.px(4))
	}
	c.dc.Stroke()
}

func (c *canvas) qr(x, y, size float64) {
	if c.code == nil {
		return
	}
	img := c.code.Image(int(c.px(size)))
	c.dc.DrawImage(img, int(c.px(x)), int(c.px(y)))
}

// info draws the name block starting at y and returns the next free line.
func (c *canvas) info(x, y, width, ax float64) float64 {
	f := c.fields
	c.text(f.Name, c.fonts.bold, 13, x, y, ax, 0.5, color.White, width)
	y += 18
	c.text(f.Headline, c.fonts.bold, 16, x, y, ax, 0.5, color.White, width)
	y += 16
	if f.ComposedSubtext != "" {
		c.text(f.ComposedSubtext, c.fonts.regular, 9, x, y, ax, 0.5, softWhite, width)
		y += 12
	}
	for _, d := range f.Details {
		c.text(d.Label+": "+d.Value, c.fonts.regular, 9, x, y, ax, 0.5, softWhite, width)
		y += 12
	}
	if f.Quote != "" {
		c.text("“"+f.Quote+"”", c.fonts.italic, 8, x, y, ax, 0.5, softWhite, width)
		y += 11
	}
	return y
}

func (c *canvas) drawLandscape() {
	f := c.fields
	c.background()
	c.header()

	c.photo(10, headerHeight+8, 80, 96, false)
	c.text(f.IssueDate+" · exp "+f.ExpiryDate, c.fonts.italic, 6, 10, headerHeight+112, 0, 0.5, softWhite, 90)

	c.info(100, headerHeight+16, 170, 0)

	c.text(f.Tagline, c.fonts.italic, 7, 10, c.h-10, 0, 0.5, softWhite, c.w-70)
	c.qr(c.w-48, c.h-48, render.QRSize)
}

func (c *canvas) drawPortrait() {
	f := c.fields
	c.background()
	c.header()

	c.photo(c.w/2-42, headerHeight+12, 84, 84, true)
	y := c.info(c.w/2, headerHeight+112, c.w-24, 0.5)
	c.text(f.IssueDate+" · exp "+f.ExpiryDate, c.fonts.italic, 6, c.w/2, y, 0.5, 0.5, softWhite, c.w-24)

	c.text(f.Tagline, c.fonts.italic, 7, 10, c.h-14, 0, 0.5, softWhite, c.w-66)
	c.qr(c.w-50, c.h-50, render.QRSize)
}

func decodeDataImage(ref string) image.Image {
	if !strings.HasPrefix(ref, "data:image/") {
		return nil
	}
	_, payload, ok := strings.Cut(ref, ";base64,")
	if !ok {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil
	}
	return img
}
