package optparse

import (
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/anacrolix/missinggo/v2"
	"github.com/huandu/xstrings"
	"golang.org/x/term"
)

const (
	defaultVarName   = "VAL"
	defaultColumns   = 80
	requiredOptsVar  = " %REQ_OPTS%"
	defaultSeparator = "   "
)

type helpConfig struct {
	output      func(line string)
	paddingLeft int
	separator   string
	columns     int
	banner      string
	skipEmpty   bool
}

type HelpOpt func(*helpConfig)

// Output sends each help line, without a trailing newline, to f. The default
// writes lines to stdout.
func Output(f func(line string)) HelpOpt {
	return func(c *helpConfig) {
		c.output = f
	}
}

// Writer writes help lines to w.
func Writer(w io.Writer) HelpOpt {
	return Output(func(line string) {
		io.WriteString(w, missinggo.Unchomp(line))
	})
}

// Spaces before each option. Defaults to 2.
func PaddingLeft(n int) HelpOpt {
	return func(c *helpConfig) {
		if n >= 0 {
			c.paddingLeft = n
		}
	}
}

// Separator goes between the option column and the help text. Defaults to
// three spaces.
func Separator(s string) HelpOpt {
	return func(c *helpConfig) {
		if s != "" {
			c.separator = s
		}
	}
}

// Columns sets the width help text is wrapped to. It defaults to the width
// of the terminal on stdout, or 80.
func Columns(n int) HelpOpt {
	return func(c *helpConfig) {
		if n > 0 {
			c.columns = n
		}
	}
}

// Banner is written before the options. " %REQ_OPTS%" in it is replaced with
// a summary of the required options.
func Banner(s string) HelpOpt {
	return func(c *helpConfig) {
		c.banner = s
	}
}

// SkipEmpty leaves out options without help text.
func SkipEmpty() HelpOpt {
	return func(c *helpConfig) {
		c.skipEmpty = true
	}
}

func newHelpConfig(opts []HelpOpt) *helpConfig {
	c := &helpConfig{
		paddingLeft: 2,
		separator:   defaultSeparator,
	}
	for _, o := range opts {
		o(c)
	}
	if c.output == nil {
		Writer(os.Stdout)(c)
	}
	if c.columns == 0 {
		c.columns = terminalColumns()
	}
	return c
}

func terminalColumns() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultColumns
	}
	return w
}

// Help writes a usage line for each option in the schema, with the help text
// wrapped to fit the columns.
func Help(schema Schema, opts ...HelpOpt) error {
	set, err := compile(schema)
	if err != nil {
		return err
	}
	writeHelp(set.options, newHelpConfig(opts))
	return nil
}

func writeHelp(options []Option, c *helpConfig) {
	argWidth := argumentsWidth(options) + c.paddingLeft
	textWidth := c.columns - argWidth - xstrings.Len(c.separator)
	if c.banner != "" {
		c.output(expandBanner(c.banner, options))
	}
	padding := strings.Repeat(" ", c.paddingLeft)
	indent := strings.Repeat(" ", argWidth+xstrings.Len(c.separator))
	for i := range options {
		o := &options[i]
		if o.Help == "" && c.skipEmpty {
			continue
		}
		lines := fitWidth(o.Help, textWidth)
		c.output(xstrings.LeftJustify(padding+optionUsage(o), argWidth, " ") + c.separator + lines[0])
		for _, l := range lines[1:] {
			c.output(indent + l)
		}
	}
}

func varName(o *Option) string {
	if o.VarName != "" {
		return o.VarName
	}
	return defaultVarName
}

// Like "--name VAL, -n VAL".
func optionUsage(o *Option) string {
	value := ""
	if o.takesValue() {
		value = " " + varName(o)
	}
	prefix := "--"
	if xstrings.Len(o.Name) == 1 {
		prefix = "-"
	}
	s := prefix + o.Name + value
	if o.Short != 0 {
		s += ", -" + string(o.Short) + value
	}
	return s
}

// The width of the widest option usage, plus two.
func argumentsWidth(options []Option) (max int) {
	for i := range options {
		o := &options[i]
		l := xstrings.Len(o.Name)
		if o.Short != 0 {
			l += 4
		}
		if o.takesValue() {
			vl := xstrings.Len(varName(o)) + 1
			if o.Short != 0 {
				vl *= 2
			}
			l += vl
		}
		if l > max {
			max = l
		}
	}
	return max + 2
}

func expandBanner(banner string, options []Option) string {
	if !strings.Contains(banner, requiredOptsVar) {
		return banner
	}
	var req []string
	for i := range options {
		o := &options[i]
		if !o.Required {
			continue
		}
		s := "--" + o.Name
		if o.Short != 0 {
			s = "-" + string(o.Short)
		}
		if o.takesValue() {
			s += " " + varName(o)
		}
		req = append(req, s)
	}
	val := ""
	if len(req) != 0 {
		val = " " + strings.Join(req, " ")
	}
	return strings.ReplaceAll(banner, requiredOptsVar, val)
}

// Breaks s into lines of at most width runes, only at spaces. A word longer
// than width gets a line to itself. Lines carry no surrounding whitespace.
func fitWidth(s string, width int) (lines []string) {
	rs := []rune(strings.TrimSpace(s))
	if width < 0 {
		width = 0
	}
	for len(rs) > width {
		i := width
		for i >= 0 && rs[i] != ' ' {
			i--
		}
		if i == -1 {
			i = width + 1
			for i < len(rs) && rs[i] != ' ' {
				i++
			}
			if i == len(rs) {
				break
			}
		}
		lines = append(lines, strings.TrimRightFunc(string(rs[:i]), unicode.IsSpace))
		rs = []rune(strings.TrimLeftFunc(string(rs[i:]), unicode.IsSpace))
	}
	return append(lines, string(rs))
}
