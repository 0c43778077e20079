package optparse

import "strings"

const (
	lexBetween = iota
	lexBare
	lexQuoted
)

// Split breaks a shell-like command line into words. Words are separated by
// spaces and tabs. Single and double quotes group characters and may open and
// close in the middle of a word. A backslash outside quotes takes the next
// character literally. Inside single quotes a backslash is an ordinary
// character, inside double quotes it only escapes a double quote. Unterminated
// quotes run to the end of the input.
func Split(s string) (words []string) {
	var (
		state  = lexBetween
		word   strings.Builder
		quote  byte
		escape bool
	)
	// Every delimiter is ASCII, so bytes pass through untouched whether or
	// not they're valid UTF-8.
	for i := 0; i < len(s); i++ {
		c := s[i]
		escaped := escape
		switch state {
		case lexBetween:
			if c == ' ' || c == '\t' {
				continue
			}
			state = lexBare
			word.Reset()
			i--
			continue
		case lexBare:
			switch {
			case escaped:
				word.WriteByte(c)
			case c == '"' || c == '\'':
				state = lexQuoted
				quote = c
			case c == ' ' || c == '\t':
				words = append(words, word.String())
				state = lexBetween
			case c == '\\':
				escape = true
			default:
				word.WriteByte(c)
			}
		case lexQuoted:
			switch {
			case c == quote && escaped:
				word.WriteByte(c)
			case c == quote:
				state = lexBare
			case escaped:
				// Only \" is an escape inside double quotes.
				word.WriteByte('\\')
				word.WriteByte(c)
			case c == '\\' && quote == '"':
				escape = true
			default:
				word.WriteByte(c)
			}
		}
		// An escape covers exactly the character following the backslash.
		if escaped {
			escape = false
		}
	}
	if escape && state == lexQuoted {
		word.WriteByte('\\')
	}
	if state != lexBetween {
		words = append(words, word.String())
	}
	return
}
