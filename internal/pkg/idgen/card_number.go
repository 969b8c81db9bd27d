package idgen

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/cardgen/internal/errors"
)

//go:generate mockgen -destination=mock/card_number.go -package=idgenmock github.com/KirkDiggler/cardgen/internal/pkg/idgen NumberGenerator

// Card number suffix bounds. Every suffix prints as exactly five digits.
const (
	SuffixMin = 10000
	SuffixMax = 99999
)

// NumberGenerator draws printed card numbers.
type NumberGenerator interface {
	Generate(prefix string) (string, error)
}

// CardNumber concatenates a theme prefix with a uniformly drawn suffix in
// [SuffixMin, SuffixMax].
type CardNumber struct {
	roller dice.Roller
}

// NewCardNumber uses roller as its entropy source. Pass dice.DefaultRoller
// in production and a SeededRoller in tests.
func NewCardNumber(roller dice.Roller) (*CardNumber, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	return &CardNumber{roller: roller}, nil
}

// Generate draws one suffix and returns prefix + suffix.
func (g *CardNumber) Generate(prefix string) (string, error) {
	// Roll returns 1..size
	n, err := g.roller.Roll(SuffixMax - SuffixMin + 1)
	if err != nil {
		return "", errors.Wrap(err, "failed to draw card number suffix")
	}

	suffix := SuffixMin + n - 1
	if suffix < SuffixMin || suffix > SuffixMax {
		return "", errors.Internalf("roller returned %d outside 1..%d", n, SuffixMax-SuffixMin+1)
	}

	return fmt.Sprintf("%s%05d", prefix, suffix), nil
}
