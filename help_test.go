package optparse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var helpSchema = Schema{
	{Name: "list", Flag: true, Help: "toggle list format"},
	{Name: "sync", Short: 's', Flag: true, Help: "if specified, synchronize all files from remote server to local directory before doing any other operation"},
	{Name: "as", Flag: true},
	{Name: "p", Flag: true},
	{Name: "longarg", Short: 'l', Help: "some long argument"},
	{Name: "with-value", Help: "use value for input"},
}

var helpLines = []string{
	"  --list                  toggle list format",
	"  --sync, -s              if specified, synchronize all files from remote server",
	"                          to local directory before doing any other operation",
	"  --as                    ",
	"  -p                      ",
	"  --longarg VAL, -l VAL   some long argument",
	"  --with-value VAL        use value for input",
}

func collectLines(lines *[]string) HelpOpt {
	return Output(func(l string) {
		*lines = append(*lines, l)
	})
}

func TestHelp(t *testing.T) {
	var lines []string
	require.NoError(t, Help(helpSchema, Columns(80), collectLines(&lines)))
	assert.Equal(t, helpLines, lines)
}

func TestHelpPaddingLeft(t *testing.T) {
	var lines []string
	require.NoError(t, Help(helpSchema, Columns(80), PaddingLeft(1), collectLines(&lines)))
	require.Len(t, lines, len(helpLines))
	for i := range lines {
		assert.Equal(t, helpLines[i][1:], lines[i])
	}
}

func TestHelpBanner(t *testing.T) {
	var lines []string
	require.NoError(t, Help(helpSchema, Columns(80), Banner("This is a banner"), collectLines(&lines)))
	assert.Equal(t, "This is a banner", lines[0])
	assert.Equal(t, helpLines, lines[1:])
}

func TestHelpSkipEmpty(t *testing.T) {
	var lines []string
	require.NoError(t, Help(helpSchema, Columns(80), SkipEmpty(), collectLines(&lines)))
	assert.Len(t, lines, 5)
	assert.NotContains(t, lines, "  --as                    ")
}

func TestHelpVarName(t *testing.T) {
	var lines []string
	require.NoError(t, Help(Schema{
		{Name: "file", Short: 'f', VarName: "FILE", Help: "filename to process"},
	}, Columns(200), collectLines(&lines)))
	assert.Equal(t, []string{"  --file FILE, -f FILE   filename to process"}, lines)
}

func TestHelpRequiredOptsBanner(t *testing.T) {
	var lines []string
	require.NoError(t, Help(Schema{
		{Name: "force", Short: 'f', Required: true, Flag: true},
		{Name: "user", Required: true, VarName: "USERNAME"},
		{Name: "opt", Required: true},
	}, Columns(80), Banner("node test.js %REQ_OPTS% [options] filename"), collectLines(&lines)))
	assert.Equal(t, "node test.js -f --user USERNAME --opt VAL [options] filename", lines[0])

	lines = nil
	require.NoError(t, Help(Schema{{Name: "opt"}}, Columns(80), Banner("node test.js %REQ_OPTS% [options] filename"), collectLines(&lines)))
	assert.Equal(t, "node test.js [options] filename", lines[0])
}

func TestHelpSeparatorAndWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Help(Schema{{Name: "x", Flag: true, Help: "ex"}}, Columns(80), Separator(" | "), Writer(&buf)))
	assert.Equal(t, "  -x  | ex\n", buf.String())
}

func TestHelpWrapsOnWords(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog again and again until it gets tired"
	var lines []string
	require.NoError(t, Help(Schema{{Name: "fox", Flag: true, Help: text}}, Columns(40), collectLines(&lines)))
	require.True(t, len(lines) > 1)
	indent := strings.Index(lines[0], "the quick")
	require.True(t, indent > 0)
	var words []string
	for i, l := range lines {
		assert.True(t, len(l) <= 40, l)
		body := l[indent:]
		if i > 0 {
			assert.Equal(t, strings.Repeat(" ", indent), l[:indent])
		}
		words = append(words, strings.Fields(body)...)
	}
	assert.Equal(t, strings.Fields(text), words)
}

func TestHelpBadSchema(t *testing.T) {
	assert.Error(t, Help(Schema{{Name: "a", Short: 'x'}, {Name: "b", Short: 'x'}}, Output(ignoreOutput)))
}

func TestFitWidth(t *testing.T) {
	s := "one two three four five"
	assert.Len(t, fitWidth(s, len(s)), 1)
	assert.Len(t, fitWidth(s, len(s)+10), 1)
	assert.Equal(t, []string{"one two three four", "five"}, fitWidth(s, 20))
	assert.Equal(t, []string{"one two three", "four five"}, fitWidth(s, 15))
	assert.Equal(t, []string{"12345", "67890"}, fitWidth("12345 67890", 5))
	assert.Len(t, fitWidth("abcdefghijklmnopqrstuvxyz", 5), 1)
	assert.Len(t, fitWidth(" abcdefghijklmnopqrstuvxyz", 5), 1)
	assert.Equal(t, []string{"abcdefghijklmnopqrstuvxyz", "abcdefghijklmnopqrstuvxyz"},
		fitWidth("abcdefghijklmnopqrstuvxyz abcdefghijklmnopqrstuvxyz", 5))
	assert.Equal(t, []string{""}, fitWidth("", 10))
	assert.Equal(t, []string{"a", "b"}, fitWidth("a b", -3))
	assert.Equal(t, []string{"a", "b", "c"}, fitWidth("a  b c", 2))
	assert.Equal(t, []string{"one", "two"}, fitWidth("one     two", 5))
}
