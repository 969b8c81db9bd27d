// Package themes resolves category keys to the visual theme a card is drawn
// with: gradient, fallback symbol, identifier prefix and logo.
package themes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme is the immutable look of one category. Themes are shared between
// cards and never modified after package init.
type Theme struct {
	Key           string   `json:"key"`
	Label         string   `json:"label"`
	GradientStops []string `json:"gradient_stops"`
	Symbol        string   `json:"symbol"`
	IDPrefix      string   `json:"id_prefix"`
	LogoRef       string   `json:"logo_ref,omitempty"`
}

func (t Theme) clone() Theme {
	t.GradientStops = append([]string(nil), t.GradientStops...)
	return t
}

// CSSGradient renders the stops as a top-left to bottom-right linear
// gradient.
func (t Theme) CSSGradient() string {
	return fmt.Sprintf("linear-gradient(to bottom right, %s)", strings.Join(t.GradientStops, ", "))
}

// Colors parses the gradient stops. Malformed stops come back as mid gray.
func (t Theme) Colors() []color.Color {
	out := make([]color.Color, 0, len(t.GradientStops))
	for _, stop := range t.GradientStops {
		out = append(out, ParseHex(stop))
	}
	return out
}

// ParseHex parses #rgb or #rrggbb.
func ParseHex(s string) color.Color {
	gray := color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}

	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return gray
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return gray
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
