package optparse

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

// Option describes a named option.
type Option struct {
	// The long name, and the key the value is stored under in the Result.
	Name string
	// Single alphanumeric character for the "-x" form, or 0.
	Short byte
	// The option takes no value. Its presence stores true.
	Flag bool
	// Repeated occurrences accumulate in order instead of overwriting.
	Multi    bool
	Required bool
	// Stored as is when the option is absent. Satisfies Required.
	Default interface{}
	// Run on each stored value after parsing.
	Type Validator
	// Placeholder for the value in help. Defaults to VAL.
	VarName string
	Help    string
	// Makes this a help option. It's a flag unless ShowHelp.TakesValue.
	ShowHelp *HelpTrigger
}

// Schema lists the options a parser accepts. Order is kept for help output.
type Schema []Option

func (o *Option) takesValue() bool {
	return !o.Flag
}

// The normalized form of a Schema that parsing works from.
type optionSet struct {
	options []Option
	byName  map[string]int
	alias   map[string]string
}

func compile(schema Schema) (*optionSet, error) {
	set := &optionSet{
		options: make([]Option, 0, len(schema)),
		byName:  make(map[string]int, len(schema)),
		alias:   make(map[string]string),
	}
	for _, o := range schema {
		if o.Name == "" {
			return nil, logicError{"option with empty name"}
		}
		if _, ok := set.byName[o.Name]; ok {
			return nil, logicError{fmt.Sprintf("option %q defined more than once", o.Name)}
		}
		if o.Short != 0 {
			if !isAlphaNumeric(o.Short) {
				return nil, logicError{fmt.Sprintf("option %q has bad short name %q", o.Name, o.Short)}
			}
			s := string(o.Short)
			if other, ok := set.alias[s]; ok {
				return nil, logicError{fmt.Sprintf("short name %q used by %q and %q", s, other, o.Name)}
			}
			set.alias[s] = o.Name
		}
		if o.ShowHelp != nil && !o.ShowHelp.TakesValue {
			o.Flag = true
		}
		set.byName[o.Name] = len(set.options)
		set.options = append(set.options, o)
	}
	return set, nil
}

// Returns the option a name given on the command line refers to. A direct
// match on the long name wins over a short alias.
func (set *optionSet) lookup(name string) *Option {
	if i, ok := set.byName[name]; ok {
		return &set.options[i]
	}
	if long, ok := set.alias[name]; ok {
		return &set.options[set.byName[long]]
	}
	return nil
}

// SchemaFromMap builds a Schema from a map of option names. Values can be an
// Option or *Option, whose Name is set from the key, true for an option that
// takes a value, false for a flag, or any integer for an option that takes a
// value. Options are ordered by name.
func SchemaFromMap(m map[string]interface{}) (Schema, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	schema := make(Schema, 0, len(m))
	for _, name := range names {
		o, err := shorthandOption(m[name])
		if err != nil {
			return nil, errors.Wrapf(err, "option %q", name)
		}
		o.Name = name
		schema = append(schema, o)
	}
	return schema, nil
}

func shorthandOption(v interface{}) (Option, error) {
	switch v := v.(type) {
	case Option:
		return v, nil
	case *Option:
		if v == nil {
			return Option{}, logicError{"nil *Option"}
		}
		return *v, nil
	case bool:
		return Option{Flag: !v}, nil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Option{}, nil
	}
	return Option{}, logicError{fmt.Sprintf("can't make option from %T", v)}
}
