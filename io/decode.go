package io

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Decode converts data in the named encoding (an IANA or WHATWG label such
// as "windows-1252" or "latin1") into a string.
// An empty name is treated as UTF-8, which must be valid.
func Decode(data []byte, name string) (text string, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "utf-8"
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		err = ErrEncoding(name)
		return
	}

	if enc == unicode.UTF8 {
		if !utf8.Valid(data) {
			err = ErrInvalidText(name)
			return
		}
		text = string(data)
		return
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		err = ErrInvalidText(name)
		return
	}

	text = string(out)
	return
}
