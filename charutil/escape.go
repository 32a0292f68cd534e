// Package charutil provides the small character-level helpers shared by
// the regex compiler, the NFA persistence format, and the lexer spec
// loader: escape-sequence decoding and line splitting.
package charutil

import "fmt"

// ErrBadEscape reports an escape sequence whose hex digits could not be
// decoded.
type ErrBadEscape struct {
	Seq string
}

func (e *ErrBadEscape) Error() string {
	return fmt.Sprintf("bad escape sequence %q", e.Seq)
}

func hexit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// DecodeEscape decodes an escape sequence from runes, where pos is
// positioned just after the backslash. It advances pos past the escape
// and returns the decoded rune. epsilon is substituted for \e, so callers
// can spell an epsilon edge as \e in a pattern or persisted NFA. Unknown
// \X escapes decode to X verbatim, matching the original read_escape's
// default case.
func DecodeEscape(src []rune, pos *int, epsilon rune) (rune, error) {
	if *pos >= len(src) {
		return 0, &ErrBadEscape{Seq: "\\"}
	}
	specifier := src[*pos]
	*pos++
	switch specifier {
	case 'a':
		return '\a', nil
	case 'b':
		return '\b', nil
	case 'e':
		return epsilon, nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'v':
		return '\v', nil
	case '\\':
		return '\\', nil
	case 'x':
		return decodeHex(src, pos, 2)
	case 'u':
		return decodeHex(src, pos, 4)
	default:
		return specifier, nil
	}
}

func decodeHex(src []rune, pos *int, n int) (rune, error) {
	if *pos+n > len(src) {
		return 0, &ErrBadEscape{Seq: string(src[*pos:])}
	}
	var value int
	for i := 0; i < n; i++ {
		d, ok := hexit(src[*pos+i])
		if !ok {
			return 0, &ErrBadEscape{Seq: string(src[*pos : *pos+n])}
		}
		value = value*16 + d
	}
	*pos += n
	return rune(value), nil
}
