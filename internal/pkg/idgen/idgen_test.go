package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/cardgen/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("card").Generate()
	assert.True(t, strings.HasPrefix(id, "card_"))
	assert.Len(t, id, len("card_")+36)
	assert.NotEqual(t, id, idgen.NewUUID("card").Generate())
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("exp")
	assert.Equal(t, "exp_1", gen.Generate())
	assert.Equal(t, "exp_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
