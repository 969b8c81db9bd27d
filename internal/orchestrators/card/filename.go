package card

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/profiles"
)

const maxNameToken = 64

// Filename builds <name>_<suffix>.<ext>. The name keeps letters and digits,
// turns runs of anything else into one underscore and falls back to "card".
func Filename(c *entities.Card, profile *profiles.Profile, format export.Format) string {
	return nameToken(c.Field(entities.FieldName)) + "_" + profile.FilenameSuffix + "." + format.Extension()
}

func nameToken(name string) string {
	var b strings.Builder
	pendingSep := false
	count := 0
	for _, r := range name {
		if count >= maxNameToken {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			count++
			continue
		}
		pendingSep = true
	}

	if b.Len() == 0 {
		return "card"
	}
	return b.String()
}
