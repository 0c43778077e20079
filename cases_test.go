package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args     []string
	err      error
	expected map[string]interface{}
	posArgs  []string
}

func noErrorCase(expected map[string]interface{}, posArgs []string, args ...string) parseCase {
	if expected == nil {
		expected = map[string]interface{}{}
	}
	if posArgs == nil {
		posArgs = []string{}
	}
	return parseCase{args: args, expected: expected, posArgs: posArgs}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

func (me parseCase) Run(t *testing.T, schema Schema) {
	r, err := ParseErr(schema, me.args)
	assert.EqualValues(t, me.err, err, "%q", me.args)
	if me.err != nil {
		return
	}
	assert.EqualValues(t, me.expected, r.Options, "%q", me.args)
	assert.EqualValues(t, me.posArgs, r.Args, "%q", me.args)
}

func RunCases(t *testing.T, cases []parseCase, schema Schema) {
	for _, _case := range cases {
		_case.Run(t, schema)
	}
}
