// Package charset converts UTF-8 input to ISO-8859-15 (Latin-9), the
// encoding htmlify's output is written in when --utf8 is given.
package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/arthur-debert/htmlify/pkg/errors"
)

// ToLatin9 re-encodes s from UTF-8 to ISO-8859-15. It fails on invalid
// UTF-8 and on characters Latin-9 cannot represent.
func ToLatin9(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errors.New(errors.ErrCharsetConversion, "input is not valid UTF-8").
			WithDetail("offset", firstInvalid(s))
	}

	out, err := charmap.ISO8859_15.NewEncoder().String(s)
	if err != nil {
		e := errors.Wrap(err, errors.ErrCharsetConversion, "input has characters outside ISO-8859-15")
		if r, offset, ok := firstUnsupported(s); ok {
			e = e.WithDetail("rune", string(r)).WithDetail("offset", offset)
		}
		return "", e
	}
	return out, nil
}

// FromLatin9 decodes ISO-8859-15 bytes into UTF-8. Every byte maps to a
// character, so it never fails on well-formed Go strings.
func FromLatin9(s string) (string, error) {
	out, err := charmap.ISO8859_15.NewDecoder().String(s)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCharsetConversion, "failed to decode ISO-8859-15")
	}
	return out, nil
}

func firstInvalid(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return i
			}
		}
	}
	return -1
}

func firstUnsupported(s string) (rune, int, bool) {
	for i, r := range s {
		if _, ok := charmap.ISO8859_15.EncodeRune(r); !ok {
			return r, i, true
		}
	}
	return 0, 0, false
}
