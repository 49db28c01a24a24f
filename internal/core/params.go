package core

import (
	"fmt"
	"strings"
)

// Param is a single named argument passed to a mocked method.
type Param struct {
	Name  string
	Value any
}

// Params is the ordered list of named arguments for one call.
type Params []Param

// Arg builds a Param.
func Arg(name string, value any) Param {
	return Param{Name: name, Value: value}
}

// Args builds Params from the given Param values, preserving their order.
func Args(params ...Param) Params {
	if len(params) == 0 {
		return Params{}
	}

	out := make(Params, len(params))
	copy(out, params)

	return out
}

// Get returns the value of the named parameter and whether it was present.
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}

	return nil, false
}

// Match checks each named expectation against the parameter of the same name.
// Expected values may be plain values (compared with reflect.DeepEqual) or
// Matchers. Returns nil when every expectation holds.
func (p Params) Match(expected map[string]any) error {
	var failures []string

	for _, name := range sortedKeys(expected) {
		actual, ok := p.Get(name)
		if !ok {
			failures = append(failures, fmt.Sprintf("param %q: not passed", name))

			continue
		}

		matched, msg := MatchValue(actual, expected[name])
		if !matched {
			failures = append(failures, fmt.Sprintf("param %q: %s", name, msg))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %s", ErrParamMismatch, strings.Join(failures, "; "))
	}

	return nil
}

// Names returns the parameter names in call order.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}

	return names
}

// String renders the params as name=value pairs.
func (p Params) String() string {
	parts := make([]string, len(p))
	for i, param := range p {
		parts[i] = fmt.Sprintf("%s=%#v", param.Name, param.Value)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (p Params) clone() Params {
	return Args(p...)
}
