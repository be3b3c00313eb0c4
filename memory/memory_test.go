package memory

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func dump[T any](mem *Memory[T]) (cells []T) {
	for _, value := range mem.Values() {
		cells = append(cells, value)
	}
	return
}

func TestNewExpanding(t *testing.T) {
	assert := assert.New(t)

	mem := NewExpanding(7)
	assert.True(mem.Expanding())
	assert.Equal(1, mem.Len())
	assert.Equal(0, mem.Pointer())
	assert.Equal(0, mem.Origin())

	value, err := mem.GetAtPointer()
	assert.NoError(err)
	assert.Equal(7, value)
}

func TestNewFixed(t *testing.T) {
	assert := assert.New(t)

	mem := NewFixed([]rune("abc"))
	assert.False(mem.Expanding())
	assert.Equal(3, mem.Len())
	assert.Equal(0, mem.Pointer())

	value, err := mem.GetAtPointer()
	assert.NoError(err)
	assert.Equal('a', value)
}

func TestNewFixed_Empty(t *testing.T) {
	assert := assert.New(t)

	mem := NewFixed[rune](nil)
	assert.Equal(0, mem.Len())

	_, err := mem.GetAtPointer()
	assert.ErrorIs(err, ErrOutOfBounds{})
	assert.ErrorIs(mem.Next(), ErrOverflow)
}

func TestMemory_MoveBy(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		offsets []int
		pointer int
		length  int
		origin  int
	}){
		{"stay", []int{0}, 0, 1, 0},
		{"right", []int{1}, 1, 2, 0},
		{"far right", []int{5}, 5, 6, 0},
		{"left", []int{-1}, 0, 2, 1},
		{"far left", []int{-4}, 0, 5, 4},
		{"left then right", []int{-2, 2}, 2, 3, 2},
		{"right then left", []int{3, -3}, 0, 4, 0},
		{"inside", []int{3, -1, -1}, 1, 4, 0},
	}

	for _, entry := range table {
		mem := NewExpanding(0)
		for _, offset := range entry.offsets {
			assert.NoError(mem.MoveBy(offset), entry.name)
		}
		assert.Equal(entry.pointer, mem.Pointer(), entry.name)
		assert.Equal(entry.length, mem.Len(), entry.name)
		assert.Equal(entry.origin, mem.Origin(), entry.name)
	}
}

func TestMemory_MoveBy_Fixed(t *testing.T) {
	assert := assert.New(t)

	mem := NewFixed([]int{1, 2, 3})

	assert.ErrorIs(mem.Prev(), ErrUnderflow)
	assert.Equal(0, mem.Pointer())

	assert.NoError(mem.MoveBy(2))
	assert.Equal(2, mem.Pointer())

	assert.ErrorIs(mem.Next(), ErrOverflow)
	assert.Equal(2, mem.Pointer())
	assert.Equal(3, mem.Len())

	assert.ErrorIs(mem.MoveBy(-3), ErrUnderflow)
	assert.Equal(2, mem.Pointer())
}

func TestMemory_Expanding_Stable(t *testing.T) {
	assert := assert.New(t)

	mem := NewExpanding(0)
	assert.NoError(mem.SetAtPointer(42))

	assert.NoError(mem.Prev())
	assert.NoError(mem.Prev())
	assert.Equal([]int{0, 0, 42}, dump(mem))

	assert.NoError(mem.Next())
	assert.NoError(mem.Next())
	value, err := mem.GetAtPointer()
	assert.NoError(err)
	assert.Equal(42, value)
	assert.Equal(mem.Origin(), mem.Pointer())
}

func TestMemory_GetSet(t *testing.T) {
	assert := assert.New(t)

	mem := NewExpanding("-")
	assert.NoError(mem.MoveBy(2))
	assert.NoError(mem.Set(1, "x"))
	assert.NoError(mem.SetAtPointer("y"))
	assert.Equal([]string{"-", "x", "y"}, dump(mem))

	value, err := mem.Get(1)
	assert.NoError(err)
	assert.Equal("x", value)

	_, err = mem.Get(3)
	assert.Equal(ErrOutOfBounds{Index: 3, Length: 3}, err)
	assert.EqualError(err, "index (3) out of bounds (0..3)")

	_, err = mem.Get(-1)
	assert.ErrorIs(err, ErrOutOfBounds{})

	err = mem.Set(10, "z")
	assert.ErrorIs(err, ErrOutOfBounds{})
	assert.Equal(3, mem.Len())
}

func TestMemory_SetPointer(t *testing.T) {
	assert := assert.New(t)

	mem := NewFixed([]byte("[-]"))
	assert.NoError(mem.MoveBy(2))
	mem.SetPointer(0)
	assert.Equal(0, mem.Pointer())

	value, err := mem.GetAtPointer()
	assert.NoError(err)
	assert.Equal(byte('['), value)
}

func TestMemory_Values(t *testing.T) {
	assert := assert.New(t)

	mem := NewFixed([]int{4, 5, 6})
	assert.Equal(map[int]int{0: 4, 1: 5, 2: 6}, maps.Collect(mem.Values()))
}
