package optparse

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs a validator the way parsing does, returning what it stored.
func runValidator(v Validator, value string) (stored interface{}, err error) {
	stored = value
	err = v(value, func(nv interface{}) { stored = nv })
	return
}

func TestInt(t *testing.T) {
	v, err := runValidator(Int(""), "-12")
	require.NoError(t, err)
	assert.Equal(t, -12, v)
	for _, s := range []string{"", "1.5", "+3", "x", "99999999999999999999999"} {
		_, err := runValidator(Int(""), s)
		assert.EqualError(t, err, "Expected value to be an integer", s)
	}
	_, err = runValidator(Int("need a number"), "x")
	assert.EqualError(t, err, "need a number")
}

func TestRegexp(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]+$`)
	v, err := runValidator(Regexp("", re), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	_, err = runValidator(Regexp("", re), "ABC")
	assert.EqualError(t, err, "Invalid value")
}

func TestBytes(t *testing.T) {
	v, err := runValidator(Bytes(""), "100g")
	require.NoError(t, err)
	assert.EqualValues(t, uint64(100e9), v)
	_, err = runValidator(Bytes("bad size"), "lots")
	assert.EqualError(t, err, "bad size")
}

func TestDuration(t *testing.T) {
	v, err := runValidator(Duration(""), "1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, v)
	_, err = runValidator(Duration(""), "soon")
	assert.EqualError(t, err, "Expected a duration")
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.txt")

	v, err := runValidator(FileWrite(""), name)
	require.NoError(t, err)
	f, ok := v.(*os.File)
	require.True(t, ok)
	_, err = f.WriteString("hello")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	v, err = runValidator(FileRead(""), name)
	require.NoError(t, err)
	f = v.(*os.File)
	assert.Equal(t, name, f.Name())
	require.NoError(t, f.Close())

	_, err = runValidator(FileRead(""), filepath.Join(dir, "missing"))
	assert.EqualError(t, err, "Could not open file or invalid filename")
}

func TestFileOption(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
	r, err := ParseErr(Schema{{Name: "in", Short: 'i', Multi: true, Type: FileRead("")}}, []string{"-i", name})
	require.NoError(t, err)
	fs := r.Get("in").([]interface{})
	require.Len(t, fs, 1)
	f := fs[0].(*os.File)
	defer f.Close()
	assert.Equal(t, name, f.Name())
}
