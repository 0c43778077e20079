package optparse

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Validator checks an option value after parsing. It can store something else
// in its place with replace. The returned error's message is reported to the
// user as is.
type Validator func(value string, replace func(interface{})) error

func orDefault(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}

var intRegexp = regexp.MustCompile(`^-?[0-9]+$`)

// Int accepts decimal integers and replaces them with an int.
func Int(msg string) Validator {
	msg = orDefault(msg, "Expected value to be an integer")
	return func(value string, replace func(interface{})) error {
		if !intRegexp.MatchString(value) {
			return errors.New(msg)
		}
		i, err := strconv.Atoi(value)
		if err != nil {
			return errors.New(msg)
		}
		replace(i)
		return nil
	}
}

// Regexp accepts values that re matches.
func Regexp(msg string, re *regexp.Regexp) Validator {
	msg = orDefault(msg, "Invalid value")
	return func(value string, _ func(interface{})) error {
		if !re.MatchString(value) {
			return errors.New(msg)
		}
		return nil
	}
}

// File opens the named file and replaces the value with the *os.File. Closing
// it is up to the caller.
func File(msg string, flag int, perm os.FileMode) Validator {
	msg = orDefault(msg, "Could not open file or invalid filename")
	return func(value string, replace func(interface{})) error {
		f, err := os.OpenFile(value, flag, perm)
		if err != nil {
			return errors.New(msg)
		}
		replace(f)
		return nil
	}
}

// FileRead opens the named file for reading.
func FileRead(msg string) Validator {
	return File(msg, os.O_RDONLY, 0)
}

// FileWrite creates or truncates the named file for writing.
func FileWrite(msg string) Validator {
	return File(msg, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
}

// Bytes accepts human readable byte quantities, like 100GB or 4KiB, and
// replaces them with a uint64. See https://godoc.org/github.com/dustin/go-humanize.
func Bytes(msg string) Validator {
	msg = orDefault(msg, "Expected a byte quantity")
	return func(value string, replace func(interface{})) error {
		n, err := humanize.ParseBytes(value)
		if err != nil {
			return errors.New(msg)
		}
		replace(n)
		return nil
	}
}

// Duration accepts anything time.ParseDuration does, and replaces it with a
// time.Duration.
func Duration(msg string) Validator {
	msg = orDefault(msg, "Expected a duration")
	return func(value string, replace func(interface{})) error {
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.New(msg)
		}
		replace(d)
		return nil
	}
}
