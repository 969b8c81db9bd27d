package export_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/display"
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/profiles"
	"github.com/KirkDiggler/cardgen/internal/render"
)

type ExportTestSuite struct {
	suite.Suite
	ctx      context.Context
	renderer *render.Renderer
	raster   *export.Raster
	now      time.Time
}

func (s *ExportTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	r, err := render.New()
	s.Require().NoError(err)
	s.renderer = r

	raster, err := export.NewRaster(5 * time.Second)
	s.Require().NoError(err)
	s.raster = raster
}

func (s *ExportTestSuite) surface(t entities.CardType, o entities.Orientation, mutate func(*entities.Card)) *render.Surface {
	profile, ok := profiles.Lookup(t)
	s.Require().True(ok)

	card := profile.NewCard("card_1", o, s.now.Unix())
	card.Identifier = "OA12345"
	if mutate != nil {
		mutate(card)
	}
	fields := display.Project(card, profile, profile.Catalog.ResolveTheme(card.CategoryKey), s.now)

	surface, err := s.renderer.Render(fields)
	s.Require().NoError(err)
	return surface
}

func samplePhoto() string {
	img := image.NewRGBA(image.Rect(0, 0, 40, 60))
	for x := 0; x < 40; x++ {
		for y := 0; y < 60; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func (s *ExportTestSuite) TestParseFormat() {
	f, err := export.ParseFormat(" PNG ")
	s.Require().NoError(err)
	s.Equal(export.FormatPNG, f)
	s.Equal("image/png", f.ContentType())

	f, err = export.ParseFormat("pdf")
	s.Require().NoError(err)
	s.Equal("application/pdf", f.ContentType())
	s.Equal("pdf", f.Extension())

	_, err = export.ParseFormat("gif")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExportTestSuite) TestValidateCapture() {
	s.NoError(export.ValidateCapture(export.FormatPNG, 3))
	s.NoError(export.ValidateCapture(export.FormatPDF, 8))

	for _, q := range []int{0, 9} {
		err := export.ValidateCapture(export.FormatPNG, q)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	}

	err := export.ValidateCapture(export.Format("gif"), 3)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExportTestSuite) TestRasterPNG() {
	tests := []struct {
		name        string
		cardType    entities.CardType
		orientation entities.Orientation
		quality     int
		mutate      func(*entities.Card)
	}{
		{name: "faction landscape", cardType: entities.CardTypeFaction, orientation: entities.OrientationLandscape, quality: 1},
		{name: "developer at quality 3", cardType: entities.CardTypeDeveloper, orientation: entities.OrientationLandscape, quality: 3},
		{
			name:        "typology portrait with photo",
			cardType:    entities.CardTypeTypology,
			orientation: entities.OrientationPortrait,
			quality:     2,
			mutate: func(c *entities.Card) {
				c.PhotoRef = samplePhoto()
			},
		},
		{
			name:        "unknown category",
			cardType:    entities.CardTypeTypology,
			orientation: entities.OrientationLandscape,
			quality:     1,
			mutate: func(c *entities.Card) {
				c.CategoryKey = "zzz"
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			surface := s.surface(tt.cardType, tt.orientation, tt.mutate)

			stage, err := s.raster.Prepare(s.ctx, surface)
			s.Require().NoError(err)
			defer func() { _ = stage.Close() }()

			data, err := stage.Capture(s.ctx, export.FormatPNG, tt.quality)
			s.Require().NoError(err)

			img, err := png.Decode(bytes.NewReader(data))
			s.Require().NoError(err)
			s.Equal(surface.Width*tt.quality, img.Bounds().Dx())
			s.Equal(surface.Height*tt.quality, img.Bounds().Dy())
		})
	}
}

func (s *ExportTestSuite) TestRasterCapturesRepeatedly() {
	surface := s.surface(entities.CardTypeFaction, entities.OrientationLandscape, nil)

	stage, err := s.raster.Prepare(s.ctx, surface)
	s.Require().NoError(err)
	defer func() { _ = stage.Close() }()

	low, err := stage.Capture(s.ctx, export.FormatPNG, 1)
	s.Require().NoError(err)
	high, err := stage.Capture(s.ctx, export.FormatPNG, 2)
	s.Require().NoError(err)
	s.Greater(len(high), len(low))
}

func (s *ExportTestSuite) TestRasterPDFUnimplemented() {
	surface := s.surface(entities.CardTypeFaction, entities.OrientationLandscape, nil)

	stage, err := s.raster.Prepare(s.ctx, surface)
	s.Require().NoError(err)

	_, err = stage.Capture(s.ctx, export.FormatPDF, 1)
	s.Require().Error(err)
	s.True(errors.IsUnimplemented(err))
}

func (s *ExportTestSuite) TestRasterCanceledContext() {
	surface := s.surface(entities.CardTypeFaction, entities.OrientationLandscape, nil)

	stage, err := s.raster.Prepare(s.ctx, surface)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err = stage.Capture(ctx, export.FormatPNG, 1)
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))

	_, err = s.raster.Prepare(ctx, surface)
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *ExportTestSuite) TestPrepareRejectsMissingSurface() {
	_, err := s.raster.Prepare(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = export.NewChrome("/opt/chrome/chrome", 0).Prepare(s.ctx, &render.Surface{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExportTestSuite) TestNew() {
	s.Run("raster", func() {
		e, err := export.New(&export.Config{Backend: export.BackendRaster})
		s.Require().NoError(err)
		s.Equal(export.BackendRaster, e.Name())
	})

	s.Run("chrome with explicit path", func() {
		e, err := export.New(&export.Config{Backend: export.BackendChrome, ChromePath: "/opt/chrome/chrome"})
		s.Require().NoError(err)
		s.Equal(export.BackendChrome, e.Name())
	})

	s.Run("auto with explicit path picks chrome", func() {
		e, err := export.New(&export.Config{ChromePath: "/opt/chrome/chrome"})
		s.Require().NoError(err)
		s.Equal(export.BackendChrome, e.Name())
	})

	s.Run("unknown backend", func() {
		_, err := export.New(&export.Config{Backend: "gpu"})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil config", func() {
		_, err := export.New(nil)
		s.Require().Error(err)
	})
}

func TestExportTestSuite(t *testing.T) {
	suite.Run(t, new(ExportTestSuite))
}
