package photos_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/photos"
	"github.com/KirkDiggler/cardgen/internal/testutils"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor *photos.Imaging
}

func (s *ProcessorTestSuite) SetupTest() {
	s.processor = photos.NewImaging()
}

func (s *ProcessorTestSuite) decode(uri string) image.Image {
	s.Require().True(strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	s.Require().NoError(err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	s.Require().NoError(err)
	return img
}

func (s *ProcessorTestSuite) TestProcess() {
	s.Run("small image keeps its size", func() {
		uri, err := s.processor.Process(testutils.EncodePNG(100, 120))
		s.Require().NoError(err)

		img := s.decode(uri)
		s.Equal(100, img.Bounds().Dx())
		s.Equal(120, img.Bounds().Dy())
	})

	s.Run("large image is fitted", func() {
		uri, err := s.processor.Process(testutils.EncodePNG(800, 600))
		s.Require().NoError(err)

		img := s.decode(uri)
		s.Equal(photos.MaxWidth, img.Bounds().Dx())
		s.Equal(300, img.Bounds().Dy())
	})

	s.Run("tall image is fitted by height", func() {
		uri, err := s.processor.Process(testutils.EncodePNG(240, 960))
		s.Require().NoError(err)

		img := s.decode(uri)
		s.Equal(120, img.Bounds().Dx())
		s.Equal(photos.MaxHeight, img.Bounds().Dy())
	})

	s.Run("empty", func() {
		_, err := s.processor.Process(nil)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not an image", func() {
		_, err := s.processor.Process([]byte("definitely not a png"))
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("too large", func() {
		_, err := s.processor.Process(make([]byte, photos.MaxUploadBytes+1))
		s.Require().Error(err)
		s.Equal(errors.CodeTooLarge, errors.GetCode(err))
	})
}

func (s *ProcessorTestSuite) TestDataURI() {
	s.Equal("data:image/png;base64,AQID", photos.DataURI("image/png", []byte{1, 2, 3}))
}

func TestProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}
