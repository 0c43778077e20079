package optparse

import "fmt"

// Result holds parsed options by their canonical names, and the positional
// arguments in order.
type Result struct {
	Options map[string]interface{}
	Args    []string

	defaulted map[string]bool
}

func newResult() *Result {
	return &Result{
		Options: make(map[string]interface{}),
		Args:    []string{},
	}
}

// Stores a value for an option, appending for Multi options.
func (r *Result) set(o *Option, v interface{}) {
	if !o.Multi {
		r.Options[o.Name] = v
		return
	}
	vs, _ := r.Options[o.Name].([]interface{})
	r.Options[o.Name] = append(vs, v)
}

func (r *Result) setDefault(o *Option) {
	if r.defaulted == nil {
		r.defaulted = make(map[string]bool)
	}
	r.defaulted[o.Name] = true
	r.Options[o.Name] = o.Default
}

func (r *Result) isDefault(name string) bool {
	return r.defaulted[name]
}

func (r *Result) Has(name string) bool {
	_, ok := r.Options[name]
	return ok
}

func (r *Result) Get(name string) interface{} {
	return r.Options[name]
}

// Bool reports whether a flag is set. For Multi flags, the last occurrence
// decides.
func (r *Result) Bool(name string) bool {
	switch v := r.Options[name].(type) {
	case bool:
		return v
	case []interface{}:
		if len(v) == 0 {
			return false
		}
		b, _ := v[len(v)-1].(bool)
		return b
	}
	return false
}

// String returns the value of an option, or "" if it's absent. Values that
// aren't strings, such as ones replaced by a Validator, are formatted.
func (r *Result) String(name string) string {
	switch v := r.Options[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Strings returns the values of a Multi option. A single value is returned as
// a one element slice.
func (r *Result) Strings(name string) (ret []string) {
	switch v := r.Options[name].(type) {
	case nil:
	case []string:
		ret = append(ret, v...)
	case []interface{}:
		for _, e := range v {
			if s, ok := e.(string); ok {
				ret = append(ret, s)
			} else {
				ret = append(ret, fmt.Sprint(e))
			}
		}
	default:
		ret = []string{r.String(name)}
	}
	return
}

// truthy reports whether a stored value counts as given for help options.
func truthy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case []interface{}:
		for _, e := range v {
			if truthy(e) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
