package engine

// Marker records an open loop: the instruction position of its '[' and the
// absolute tape position that was current when it was entered.
type Marker struct {
	Ip   int
	Tape int
}

// Stack of open loop markers.
// A zero Limit leaves the depth unbounded.
type Stack struct {
	Limit int
	Data  []Marker
}

func (s *Stack) Push(value Marker) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value Marker, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return s.Limit > 0 && len(s.Data) >= s.Limit
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value Marker, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
