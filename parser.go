package optparse

import "strings"

// ErrorHandler decides what happens on a parse error. Returning nil skips the
// offending token and carries on, returning an error stops parsing with it.
type ErrorHandler func(*ParseError) error

func failFast(pe *ParseError) error {
	return pe
}

// Parser state between tokens.
type state struct {
	options *optionSet
	result  *Result
	onError ErrorHandler
	// An option that takes a value, waiting for the next token.
	pending *Option
}

func newState(options *optionSet, onError ErrorHandler) *state {
	if onError == nil {
		onError = failFast
	}
	return &state{
		options: options,
		result:  newResult(),
		onError: onError,
	}
}

func parse(options *optionSet, t *Tokenizer, onError ErrorHandler) (*Result, error) {
	s := newState(options, onError)
	for !t.EOF() {
		if err := s.handle(t.Next()); err != nil {
			return s.result, err
		}
	}
	return s.result, s.finish()
}

func (s *state) fail(kind ErrorKind, name string) error {
	return s.onError(&ParseError{Kind: kind, Name: name})
}

// handle applies one token. An End token only settles a pending option.
func (s *state) handle(tok Token) error {
	if o := s.pending; o != nil {
		s.pending = nil
		if tok.Type == Value {
			s.result.set(o, tok.Value)
			return nil
		}
		if err := s.fail(ErrRequired, o.Name); err != nil {
			return err
		}
	}
	switch tok.Type {
	case End:
	case Value:
		s.result.Args = append(s.result.Args, tok.Value)
	case ShortArg:
		return s.option(tok.Name, "-"+tok.Name)
	case LongArg:
		return s.option(tok.Name, "--"+tok.Name)
	case LongArgWithValue:
		return s.inlineValue(tok.Name, tok.Value)
	default:
		return s.fail(ErrInvalid, tok.Raw)
	}
	return nil
}

func (s *state) option(name, given string) error {
	o := s.options.lookup(name)
	if o == nil {
		return s.fail(ErrUnknown, given)
	}
	if o.takesValue() {
		s.pending = o
	} else {
		s.result.set(o, true)
	}
	return nil
}

func (s *state) inlineValue(name, value string) error {
	o := s.options.lookup(name)
	if o == nil {
		return s.fail(ErrUnknown, "--"+name)
	}
	if o.takesValue() {
		s.result.set(o, value)
		return nil
	}
	b, ok := parseTruth(value)
	if !ok {
		return s.fail(ErrArgument, o.Name)
	}
	s.result.set(o, b)
	return nil
}

// Settles a trailing pending option, then applies defaults and checks for
// missing required options.
func (s *state) finish() error {
	if err := s.handle(Token{Type: End}); err != nil {
		return err
	}
	var missing []string
	for i := range s.options.options {
		o := &s.options.options[i]
		if s.result.Has(o.Name) {
			continue
		}
		if o.Default != nil {
			s.result.setDefault(o)
		} else if o.Required {
			missing = append(missing, o.Name)
		}
	}
	if len(missing) != 0 {
		return s.onError(&ParseError{Kind: ErrMissing, Names: missing})
	}
	return nil
}

// The only literals a flag accepts inline. Anything else, including "", is
// rejected.
func parseTruth(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "yes", "1", "true":
		return true, true
	case "no", "0", "false":
		return false, true
	}
	return false, false
}
