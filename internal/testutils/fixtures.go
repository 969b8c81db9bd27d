package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/profiles"
)

// Fixture values shared by card tests
const (
	TestCardID     = "card-test-001"
	TestCardName   = "Ada Lovelace"
	TestIdentifier = "212345"
)

// TestNow is the instant fixtures are stamped with. Typology cards issued
// at TestNow print 14/03/2025 and expire 2075-03-14.
var TestNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// CreateTestCard returns a card of cardType with the profile placeholders,
// TestCardName and TestIdentifier.
func CreateTestCard(cardType entities.CardType) *entities.Card {
	profile, ok := profiles.Lookup(cardType)
	if !ok {
		panic("testutils: unknown card type " + string(cardType))
	}

	c := profile.NewCard(TestCardID, entities.OrientationLandscape, TestNow.Unix())
	c.Fields[entities.FieldName] = TestCardName
	c.Identifier = TestIdentifier
	return c
}

// EncodePNG returns a w x h PNG split into a red top half and blue bottom
// half, so orientation and cropping are visible in assertions.
func EncodePNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.RGBA{R: 220, A: 255}
		if y >= h/2 {
			c = color.RGBA{B: 220, A: 255}
		}
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
