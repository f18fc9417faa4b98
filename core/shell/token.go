package shell

import (
	"errors"
	"strings"
)

var (
	// ErrUnterminatedQuote is returned when a line ends inside a
	// double-quoted section.
	ErrUnterminatedQuote = errors.New("unterminated quote")

	// ErrDelimiterAfterQuote is returned when a closing quote is
	// immediately followed by something other than a delimiter or the
	// end of the line, e.g. `"foo"bar`.
	ErrDelimiterAfterQuote = errors.New("expected delimiter after closing quote")
)

// isDelimiter reports whether c splits words when outside quotes.
func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\a':
		return true
	default:
		return false
	}
}

// Split breaks a command line into words.
//
// Words are separated by runs of delimiters (space, tab, CR, LF, BEL).
// A double-quoted section groups delimiters into a single word; the
// quotes themselves are dropped. A closing quote must be followed by a
// delimiter or the end of the line and always ends the current word.
// Consecutive delimiters never produce empty words, so a blank line
// yields a nil slice.
func Split(line string) ([]string, error) {
	var tokens []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if !inQuotes {
				inQuotes = true
				continue
			}
			if i+1 < len(line) && !isDelimiter(line[i+1]) {
				return nil, ErrDelimiterAfterQuote
			}
			inQuotes = false
			i++ // consume the delimiter after the closing quote
			flush()

		case inQuotes || !isDelimiter(c):
			buf.WriteByte(c)

		default:
			flush()
		}
	}

	if inQuotes {
		return nil, ErrUnterminatedQuote
	}
	flush()

	return tokens, nil
}
