package themes

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/cardgen/internal/entities"
)

// Catalog is the theme table of one card type.
type Catalog struct {
	cardType   entities.CardType
	categories []Category
	byKey      map[string]Category
	// aliases are matched after upper-casing the input
	aliases  map[string]Category
	fallback Theme
}

func newCatalog(cardType entities.CardType, fallback Theme, categories ...Category) *Catalog {
	c := &Catalog{
		cardType:   cardType,
		categories: categories,
		byKey:      make(map[string]Category, len(categories)),
		aliases:    make(map[string]Category),
		fallback:   fallback,
	}
	for _, cat := range categories {
		c.byKey[cat.Key()] = cat
	}
	return c
}

func (c *Catalog) alias(cat Category, codes ...string) *Catalog {
	for _, code := range codes {
		c.aliases[code] = cat
	}
	return c
}

var (
	typologyCatalog = newCatalog(entities.CardTypeTypology,
		Theme{Key: "", Label: "Unknown", Symbol: "🪪",
			GradientStops: []string{"#9ca3af", "#e5e7eb", "#f3f4f6"}},
		Defender, Thinker, Explorer, Diplomat,
	).
		alias(Defender, "ISFJ", "ISTJ", "ESFJ", "ESTJ").
		alias(Thinker, "INTJ", "INTP", "ENTJ", "ENTP").
		alias(Explorer, "ISTP", "ISFP", "ESTP", "ESFP").
		alias(Diplomat, "INFJ", "INFP", "ENFJ", "ENFP")

	factionCatalog = newCatalog(entities.CardTypeFaction,
		Theme{Key: "", Label: "Unknown", Symbol: "🎖️",
			GradientStops: []string{"#9ca3af", "#e5e7eb", "#f3f4f6"}},
		Oarai, Kuromorimine, Pravda, StGloriana, Anzio,
		Chihatan, Saunders, BCFreedom, KoalaForest, Jatkosota,
	)

	developerCatalog = newCatalog(entities.CardTypeDeveloper,
		Theme{Key: "", Label: "Unknown", Symbol: "💻",
			GradientStops: []string{"#d1d5db", "#9ca3af", "#6b7280"}},
		JavaScript, Python, Java, CPP, CSharp, Ruby, PHP, Go, Rust, Dart,
		Kotlin, Swift, TypeScript, HTML, CSS, R, Scala, Perl, Bash, Lua,
	)
)

// ForType returns the catalog of a card type, nil for unknown types.
func ForType(t entities.CardType) *Catalog {
	switch t {
	case entities.CardTypeTypology:
		return typologyCatalog
	case entities.CardTypeFaction:
		return factionCatalog
	case entities.CardTypeDeveloper:
		return developerCatalog
	}
	return nil
}

// CardType returns the card type the catalog themes
func (c *Catalog) CardType() entities.CardType {
	return c.cardType
}

// Categories lists the catalog's categories in form order
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Aliases returns the alias codes that select cat, sorted.
func (c *Catalog) Aliases(cat Category) []string {
	var out []string
	for code, target := range c.aliases {
		if target == cat {
			out = append(out, code)
		}
	}
	slices.Sort(out)
	return out
}

// Resolve maps a raw key onto a category. Category keys match exactly and
// case-sensitively; alias codes match after upper-casing. Anything else is
// Unknown.
func (c *Catalog) Resolve(key string) Category {
	if cat, ok := c.byKey[key]; ok {
		return cat
	}
	if cat, ok := c.aliases[strings.ToUpper(key)]; ok {
		return cat
	}
	return Unknown
}

// Theme returns the theme of cat. Categories that do not belong to this
// catalog, Unknown included, get the fallback theme.
func (c *Catalog) Theme(cat Category) Theme {
	if _, ok := c.byKey[cat.Key()]; ok && cat.Valid() {
		return categoryThemes[cat].clone()
	}
	return c.Fallback()
}

// Fallback returns the theme used for unknown keys
func (c *Catalog) Fallback() Theme {
	return c.fallback.clone()
}

// ResolveTheme is Theme(Resolve(key)). It never fails.
func (c *Catalog) ResolveTheme(key string) Theme {
	return c.Theme(c.Resolve(key))
}
