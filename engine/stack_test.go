package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	s.Push(Marker{Ip: 3, Tape: -1})
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(Marker{Ip: 3, Tape: -1}, s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(Marker{Ip: 1})
	s.Push(Marker{Ip: 2, Tape: 5})

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(Marker{Ip: 2, Tape: 5}, val)
	assert.Equal(1, s.Depth())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(Marker{Ip: 1}, val)
	assert.True(s.Empty())

	val, ok = s.Pop()
	assert.False(ok)
	assert.Equal(Marker{}, val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push(Marker{Ip: 1})
	s.Push(Marker{Ip: 2})

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(Marker{Ip: 2}, val)
	assert.Equal(2, s.Depth())
}

func TestStack_Limit(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Limit: 2}
	s.Push(Marker{Ip: 1})
	assert.False(s.Full())
	s.Push(Marker{Ip: 2})
	assert.True(s.Full())

	s.Reset()
	assert.True(s.Empty())
	assert.False(s.Full())
}
