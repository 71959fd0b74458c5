package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUID("talent")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "talent-"))
	assert.Len(t, first, len("talent-")+8)
	assert.NotEqual(t, first, second)
}

func TestUUIDGeneratorWithoutPrefix(t *testing.T) {
	assert.Len(t, NewUUID("").Generate(), 8)
}

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequential("talent")
	assert.Equal(t, "talent-1", gen.Generate())
	assert.Equal(t, "talent-2", gen.Generate())

	bare := NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
