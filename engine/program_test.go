package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseString(t *testing.T) {
	assert := assert.New(t)

	prog := ParseString("a+b\n [x-]\n\n.")
	assert.Equal("+[-].", prog.String())
	assert.Equal(5, prog.Len())
	assert.Equal([]Location{
		{Line: 1, Column: 2},
		{Line: 2, Column: 2},
		{Line: 2, Column: 4},
		{Line: 2, Column: 5},
		{Line: 4, Column: 1},
	}, prog.Locations)
}

func TestParseString_Nothing(t *testing.T) {
	assert := assert.New(t)

	prog := ParseString("this program does nothing at all")
	assert.Equal(0, prog.Len())
	assert.Equal("", prog.String())
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := ParseString("+\n  -")

	loc, ok := prog.Debug(1)
	assert.True(ok)
	assert.Equal(Location{Line: 2, Column: 3}, loc)
	assert.Equal("2:3", loc.String())

	_, ok = prog.Debug(2)
	assert.False(ok)

	_, ok = prog.Debug(-1)
	assert.False(ok)
}

func TestIsSymbol(t *testing.T) {
	assert := assert.New(t)

	for _, r := range "<>+-.,[]" {
		assert.True(IsSymbol(r), string(r))
	}
	for _, r := range "ab #!{}()0\n" {
		assert.False(IsSymbol(r), string(r))
	}
	assert.Equal("[", SYM_LOOP.String())
}
