package engine

// Symbol is a program command.
type Symbol rune

const (
	SYM_LEFT   = Symbol('<') // Move the tape pointer left.
	SYM_RIGHT  = Symbol('>') // Move the tape pointer right.
	SYM_INC    = Symbol('+') // Increment the current cell.
	SYM_DEC    = Symbol('-') // Decrement the current cell.
	SYM_OUTPUT = Symbol('.') // Emit the current cell as a character.
	SYM_INPUT  = Symbol(',') // Read a character into the current cell.
	SYM_LOOP   = Symbol('[') // Open a loop.
	SYM_END    = Symbol(']') // Close a loop.
)

// IsSymbol returns true if r is one of the eight commands.
func IsSymbol(r rune) bool {
	switch Symbol(r) {
	case SYM_LEFT, SYM_RIGHT, SYM_INC, SYM_DEC, SYM_OUTPUT, SYM_INPUT, SYM_LOOP, SYM_END:
		return true
	}

	return false
}

func (sym Symbol) String() string {
	return string(rune(sym))
}
