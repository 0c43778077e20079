// Command optparse parses its arguments, or a command line given as a string,
// and prints what it got as YAML.
package main

import (
	"log"
	"os"

	"github.com/anacrolix/optparse"
	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

var schema = optparse.Schema{
	{Name: "string", Short: 's', VarName: "LINE", Help: "split LINE like a shell would and parse that instead of the program arguments"},
	{Name: "verbose", Short: 'v', Flag: true, Multi: true, Help: "more output, can be repeated"},
	{Name: "input", Short: 'i', Multi: true, VarName: "FILE", Help: "file to read, can be repeated"},
	{Name: "count", Short: 'n', Type: optparse.Int(""), Help: "how many"},
	{Name: "size", Type: optparse.Bytes(""), Help: "a byte quantity, like 10MB"},
	{Name: "timeout", Default: "30s", Type: optparse.Duration(""), Help: "a duration"},
	{Name: "help", Short: 'h', Help: "show this help", ShowHelp: &optparse.HelpTrigger{
		Options: []optparse.HelpOpt{optparse.Banner("Usage: optparse %REQ_OPTS% [OPTIONS...] [--] [ARGS...]")},
	}},
}

type output struct {
	Options map[string]interface{} `yaml:"options"`
	Args    []string               `yaml:"args"`
	// The positional arguments quoted for a shell.
	Quoted string `yaml:"quoted,omitempty"`
}

func main() {
	log.SetFlags(log.Lshortfile)
	r := optparse.Parse(schema)
	if line := r.String("string"); line != "" {
		var err error
		r, err = optparse.ParseString(schema, line)
		if err != nil {
			log.Printf("parsing %q: %s", line, err)
			os.Exit(2)
		}
	}
	out := output{
		Options: r.Options,
		Args:    r.Args,
		Quoted:  shellquote.Join(r.Args...),
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}
