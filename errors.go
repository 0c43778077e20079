package optparse

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

type ErrorKind int

const (
	// An option name or alias that isn't in the schema.
	ErrUnknown ErrorKind = iota + 1
	// An option that takes a value was given none.
	ErrRequired
	// A flag was given an inline value that isn't a boolean literal.
	ErrArgument
	// Required options absent after parsing. Reported once for all of them.
	ErrMissing
	// A Validator rejected a value.
	ErrValidation
	// A malformed option word, like "--a" or "-ab".
	ErrInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknown:
		return "unknown"
	case ErrRequired:
		return "required"
	case ErrArgument:
		return "argument"
	case ErrMissing:
		return "missing"
	case ErrValidation:
		return "validation"
	case ErrInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is a problem with the arguments, as opposed to the schema.
type ParseError struct {
	Kind ErrorKind
	// The offending option. Canonical for ErrRequired, ErrArgument and
	// ErrValidation, as written for ErrUnknown and ErrInvalid.
	Name string
	// The absent options for ErrMissing, in schema order.
	Names []string
	// Validation message.
	Message string
	// The Validator's error.
	Err error
}

func (pe *ParseError) Error() string {
	switch pe.Kind {
	case ErrUnknown:
		return fmt.Sprintf("Unknown option %s", pe.Name)
	case ErrRequired:
		return fmt.Sprintf("Option %s missing required argument", pe.Name)
	case ErrArgument:
		return fmt.Sprintf("Option %s does not take an argument", pe.Name)
	case ErrMissing:
		return fmt.Sprintf("Options %s are required", strings.Join(pe.Names, ", "))
	case ErrValidation:
		return pe.Message
	case ErrInvalid:
		return fmt.Sprintf("Invalid option %s", pe.Name)
	default:
		return fmt.Sprintf("%s error for %s", pe.Kind, pe.Name)
	}
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// Errors is returned when parsing with CollectErrors.
type Errors []*ParseError

func (es Errors) Error() string {
	ss := make([]string, 0, len(es))
	for _, e := range es {
		ss = append(ss, e.Error())
	}
	return strings.Join(ss, "; ")
}

// AsParseError finds the first ParseError in err's chain. For Errors, that's
// the first one collected.
func AsParseError(err error) (*ParseError, bool) {
	var es Errors
	if xerrors.As(err, &es) && len(es) != 0 {
		return es[0], true
	}
	var pe *ParseError
	if xerrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// A mistake in the schema rather than in the arguments.
type logicError struct {
	msg string
}

func (le logicError) Error() string {
	return le.msg
}
