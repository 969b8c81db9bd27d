package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/profiles"
)

func TestFilename(t *testing.T) {
	developer, _ := profiles.Lookup(entities.CardTypeDeveloper)

	testCases := []struct {
		name     string
		cardName string
		format   export.Format
		expected string
	}{
		{name: "spaces", cardName: "Programmer Name", format: export.FormatPNG, expected: "Programmer_Name_Dev_Card.png"},
		{name: "punctuation collapses", cardName: "  Ada / Lovelace!! ", format: export.FormatPDF, expected: "Ada_Lovelace_Dev_Card.pdf"},
		{name: "unicode letters kept", cardName: "Nishizumi Miho", format: export.FormatPNG, expected: "Nishizumi_Miho_Dev_Card.png"},
		{name: "hyphen kept", cardName: "Jean-Luc", format: export.FormatPNG, expected: "Jean-Luc_Dev_Card.png"},
		{name: "empty name", cardName: "", format: export.FormatPNG, expected: "card_Dev_Card.png"},
		{name: "only symbols", cardName: "../../", format: export.FormatPNG, expected: "card_Dev_Card.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &entities.Card{Fields: map[string]string{entities.FieldName: tc.cardName}}
			assert.Equal(t, tc.expected, Filename(c, developer, tc.format))
		})
	}
}
