package optparse

import "io"

type parseOpt func(p *parser)

// OnError sets the handler for parse and validation errors. The default
// stops at the first error and returns it.
func OnError(h ErrorHandler) parseOpt {
	return func(p *parser) {
		p.onError = h
	}
}

// Keep parsing past errors, and return all of them together as Errors.
func CollectErrors() parseOpt {
	return func(p *parser) {
		p.onError = p.collect
	}
}

// Replaces os.Exit, for help options and Parse.
func Exit(exit func(code int)) parseOpt {
	return func(p *parser) {
		p.exit = exit
	}
}

// Where Parse reports errors. Defaults to os.Stderr.
func Stderr(w io.Writer) parseOpt {
	return func(p *parser) {
		p.stderr = w
	}
}
