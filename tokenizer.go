package optparse

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	// End is returned once the arguments are exhausted.
	End TokenType = iota
	// A positional argument or an option value.
	Value
	// -x
	ShortArg
	// --name
	LongArg
	// --name=value
	LongArgWithValue
	// Anything that starts with a dash but isn't a well formed option.
	Invalid
)

func (tt TokenType) String() string {
	switch tt {
	case End:
		return "end"
	case Value:
		return "value"
	case ShortArg:
		return "short"
	case LongArg:
		return "long"
	case LongArgWithValue:
		return "long with value"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
}

// A Token is a classified argument word. Name is set for option tokens, Value
// for positional values and inline option values. Raw is the word as given.
type Token struct {
	Type  TokenType
	Name  string
	Value string
	Raw   string
}

// Tokenizer classifies argument words one at a time.
type Tokenizer struct {
	args         []string
	pos          int
	endOfOptions bool
}

func NewTokenizer(args []string) *Tokenizer {
	return &Tokenizer{args: args}
}

// NewStringTokenizer splits s with Split and tokenizes the resulting words.
func NewStringTokenizer(s string) *Tokenizer {
	return NewTokenizer(Split(s))
}

// Moves the cursor past words that produce no token: empty words, and the
// first "--".
func (t *Tokenizer) skip() {
	for t.pos < len(t.args) {
		a := t.args[t.pos]
		switch {
		case a == "":
		case a == "--" && !t.endOfOptions:
			t.endOfOptions = true
		default:
			return
		}
		t.pos++
	}
}

func (t *Tokenizer) EOF() bool {
	t.skip()
	return t.pos >= len(t.args)
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() Token {
	if t.EOF() {
		return Token{Type: End}
	}
	return t.classify(t.args[t.pos])
}

// Next returns the next token and consumes it.
func (t *Tokenizer) Next() Token {
	tok := t.Peek()
	if tok.Type != End {
		t.pos++
	}
	return tok
}

// Remaining returns the words that haven't been consumed.
func (t *Tokenizer) Remaining() []string {
	return t.args[t.pos:]
}

func (t *Tokenizer) classify(a string) Token {
	tok := Token{Raw: a}
	switch {
	case t.endOfOptions || !strings.HasPrefix(a, "-"):
		tok.Type = Value
		tok.Value = a
	case len(a) == 2 && isAlphaNumeric(a[1]):
		tok.Type = ShortArg
		tok.Name = a[1:]
	case len(a) > 3 && a[1] == '-' && isAlphaNumeric(a[2]):
		name := a[2:]
		i := strings.IndexByte(name, '=')
		if i != -1 {
			tok.Value = name[i+1:]
			name = name[:i]
		}
		if len(name) < 2 {
			tok.Type = Invalid
			tok.Value = ""
			return tok
		}
		tok.Name = name
		if i != -1 {
			tok.Type = LongArgWithValue
		} else {
			tok.Type = LongArg
		}
	default:
		tok.Type = Invalid
	}
	return tok
}

func isAlphaNumeric(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
