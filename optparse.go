package optparse

import (
	"fmt"
	"io"
	"os"

	"github.com/bradfitz/iter"
)

// HelpTrigger makes an option print help when it's given.
type HelpTrigger struct {
	// Passed to Help.
	Options []HelpOpt
	// Called after help is written.
	Callback func()
	// Don't exit after showing help.
	NoExit bool
	// The option takes a value instead of being a flag. Help is shown if the
	// value isn't empty.
	TakesValue bool
}

type parser struct {
	onError ErrorHandler
	errs    Errors
	exit    func(int)
	stderr  io.Writer
}

func newParser(opts []parseOpt) *parser {
	p := &parser{
		exit:   os.Exit,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *parser) collect(pe *ParseError) error {
	p.errs = append(p.errs, pe)
	return nil
}

// ParseErr parses args against schema. The Result is returned even when there
// are errors, with whatever was parsed up to the error.
func ParseErr(schema Schema, args []string, opts ...parseOpt) (*Result, error) {
	return newParser(opts).run(schema, NewTokenizer(args))
}

// ParseString splits s into words like a shell would, and parses them.
func ParseString(schema Schema, s string, opts ...parseOpt) (*Result, error) {
	return newParser(opts).run(schema, NewStringTokenizer(s))
}

// Parse parses the program's arguments. On error it's reported on stderr and
// the program exits.
func Parse(schema Schema, opts ...parseOpt) *Result {
	p := newParser(opts)
	r, err := p.run(schema, NewTokenizer(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(p.stderr, "optparse: %s\n", err)
		if _, ok := AsParseError(err); ok {
			p.exit(2)
		} else {
			p.exit(1)
		}
	}
	return r
}

func (p *parser) run(schema Schema, t *Tokenizer) (*Result, error) {
	set, err := compile(schema)
	if err != nil {
		return nil, err
	}
	r, err := parse(set, t, p.onError)
	// Asking for help works even if the other arguments are wrong.
	p.showHelp(set, r)
	if err != nil {
		return r, err
	}
	err = p.validate(set, r)
	if err != nil {
		return r, err
	}
	if len(p.errs) != 0 {
		return r, p.errs
	}
	return r, nil
}

// Runs the first help option that was given.
func (p *parser) showHelp(set *optionSet, r *Result) {
	for i := range set.options {
		o := &set.options[i]
		if o.ShowHelp == nil || r.isDefault(o.Name) || !truthy(r.Options[o.Name]) {
			continue
		}
		writeHelp(set.options, newHelpConfig(o.ShowHelp.Options))
		if o.ShowHelp.Callback != nil {
			o.ShowHelp.Callback()
		}
		if !o.ShowHelp.NoExit {
			p.exit(0)
		}
		return
	}
}

func (p *parser) validate(set *optionSet, r *Result) error {
	for i := range set.options {
		o := &set.options[i]
		if o.Type == nil || !r.Has(o.Name) || r.isDefault(o.Name) {
			continue
		}
		if vs, ok := r.Options[o.Name].([]interface{}); ok {
			for j := range iter.N(len(vs)) {
				err := p.check(o, vs[j], func(v interface{}) { vs[j] = v })
				if err != nil {
					return err
				}
			}
			continue
		}
		err := p.check(o, r.Options[o.Name], func(v interface{}) { r.Options[o.Name] = v })
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) check(o *Option, value interface{}, replace func(interface{})) error {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	err := o.Type(s, replace)
	if err == nil {
		return nil
	}
	onError := p.onError
	if onError == nil {
		onError = failFast
	}
	return onError(&ParseError{
		Kind:    ErrValidation,
		Name:    o.Name,
		Message: err.Error(),
		Err:     err,
	})
}
