package engine

import (
	"fmt"
	"strings"
)

// Location is the 1-based line and column of a symbol in the program text.
type Location struct {
	Line   int
	Column int
}

func (loc Location) String() string {
	return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
}

// Program is a filtered list of command symbols and where they came from.
type Program struct {
	Symbols   []Symbol
	Locations []Location
}

// ParseString filters code down to the command symbols.
// All other characters are ignored.
func ParseString(code string) (prog *Program) {
	prog = &Program{}
	prog.appendLine(code, 1)
	return
}

// appendLine appends the symbols of text, starting at line lineno.
// text may span several lines.
func (prog *Program) appendLine(text string, lineno int) {
	column := 0
	for _, r := range text {
		column++
		if r == '\n' {
			lineno++
			column = 0
			continue
		}
		if !IsSymbol(r) {
			continue
		}
		prog.Symbols = append(prog.Symbols, Symbol(r))
		prog.Locations = append(prog.Locations, Location{Line: lineno, Column: column})
	}
}

// Len returns the number of symbols.
func (prog *Program) Len() int {
	return len(prog.Symbols)
}

// Debug returns the source location of the symbol at ip.
func (prog *Program) Debug(ip int) (loc Location, ok bool) {
	if ip < 0 || ip >= len(prog.Locations) {
		return
	}

	return prog.Locations[ip], true
}

// String returns the filtered program text.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, sym := range prog.Symbols {
		sb.WriteRune(rune(sym))
	}

	return sb.String()
}
