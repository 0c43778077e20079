// Package optparse parses command-line arguments against a schema of named
// options, and produces the option values and the remaining positional
// arguments.
//
// For example:
//	r, err := optparse.ParseErr(optparse.Schema{
//	    {Name: "verbose", Short: 'v', Flag: true, Help: "log more"},
//	    {Name: "input", Short: 'i', Multi: true, VarName: "FILE", Help: "files to read"},
//	    {Name: "user", Required: true},
//	    {Name: "retries", Default: "3", Type: optparse.Int("")},
//	    {Name: "help", ShowHelp: &optparse.HelpTrigger{}},
//	}, []string{"-v", "--user=joe", "-i", "a.txt", "--input", "b.txt", "out.txt"})
//
// Options are given as "-x" for single character names and short aliases, and
// "--name" or "--name=value" otherwise. Options that aren't flags take the
// following argument as their value. Flags accept an inline yes, no, true,
// false, 1 or 0. Everything after "--" is positional.
//
// Arguments can also come from a single string with ParseString, which splits
// it with shell-like quoting rules (see Split).
//
// Errors are passed to an ErrorHandler, which decides whether parsing carries
// on. By default the first error is returned.
package optparse
