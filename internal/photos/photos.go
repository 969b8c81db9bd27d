// Package photos normalises uploaded portrait images into data URIs that can
// be embedded in a rendered card.
package photos

//go:generate mockgen -destination=mock/mock_processor.go -package=photosmock github.com/KirkDiggler/cardgen/internal/photos Processor

import (
	"bytes"
	"encoding/base64"

	"github.com/disintegration/imaging"

	"github.com/KirkDiggler/cardgen/internal/errors"
)

// Limits of the photo pipeline
const (
	MaxUploadBytes = 10 << 20
	MaxWidth       = 400
	MaxHeight      = 480
	JPEGQuality    = 85
)

// Processor turns raw upload bytes into a photo reference
type Processor interface {
	Process(data []byte) (string, error)
}

// Imaging decodes any format the image package registers, applies EXIF
// orientation and shrinks the result to fit MaxWidth by MaxHeight.
type Imaging struct{}

var _ Processor = (*Imaging)(nil)

// NewImaging returns the default processor
func NewImaging() *Imaging {
	return &Imaging{}
}

// Process returns a JPEG data URI. Empty and oversized uploads are
// rejected; undecodable ones come back as InvalidArgument.
func (p *Imaging) Process(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.InvalidArgument("photo is empty")
	}
	if len(data) > MaxUploadBytes {
		return "", errors.TooLargef("photo is %d bytes, limit is %d", len(data), MaxUploadBytes)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInvalidArgument, "photo could not be decoded")
	}

	b := img.Bounds()
	if b.Dx() > MaxWidth || b.Dy() > MaxHeight {
		img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return "", errors.Wrap(err, "failed to encode photo")
	}

	return DataURI("image/jpeg", buf.Bytes()), nil
}

// DataURI base64-encodes data under mime
func DataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
