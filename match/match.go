// Package match provides matchers for inspecting captured parameters.
// This package is designed to be dot-imported alongside gomega matchers:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/impmock/match"
//	)
//
//	verified := impmock.MustVerify(t, engine, "CreateTask", impmock.Exactly(1))
//	last, _ := verified.Last()
//	g.Expect(last).To(HaveParam("requestID", BeUUID))
//
// Matchers here only inspect recorded calls. Stub selection never looks at arguments.
package match

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/toejough/impmock/internal/core"
)

// errTypeMismatch is a sentinel error for type assertion failures.
var errTypeMismatch = errors.New("type mismatch")

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// BeAny is a matcher that matches any value.
// Useful when you don't care about a particular parameter's value.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = anyMatcher{}

// BeUUID matches strings (or uuid.UUID values) holding a valid, non-nil UUID.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeUUID Matcher = uuidMatcher{}

// HaveParam returns a gomega-compatible matcher that succeeds when the actual
// core.Params, *core.CapturedCall or impmock call handle carries a parameter
// called name whose value matches expected. Expected may be a plain value or
// another matcher.
func HaveParam(name string, expected any) *ParamMatcher {
	return &ParamMatcher{name: name, expected: expected}
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	g.Expect(params).To(HaveParam("title", Satisfies(func(s string) error {
//	    if s == "" { return errors.New("empty title") }
//	    return nil
//	})))
func Satisfies[T any](predicate func(T) error) Matcher {
	return &satisfyMatcher[T]{predicate: predicate}
}

// ParamMatcher is the matcher returned by HaveParam.
type ParamMatcher struct {
	name     string
	expected any
	lastMsg  string
}

// FailureMessage describes why the last Match failed.
func (m *ParamMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %v to have param %q matching %v: %s", actual, m.name, m.expected, m.lastMsg)
}

// Match looks the parameter up and compares it with the expectation.
func (m *ParamMatcher) Match(actual any) (bool, error) {
	params, err := paramsOf(actual)
	if err != nil {
		return false, err
	}

	value, ok := params.Get(m.name)
	if !ok {
		m.lastMsg = "param not passed"

		return false, nil
	}

	matched, msg := core.MatchValue(value, m.expected)
	m.lastMsg = msg

	return matched, nil
}

// NegatedFailureMessage describes an unexpected match.
func (m *ParamMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("expected %v not to have param %q matching %v", actual, m.name, m.expected)
}

// anyMatcher is the implementation of the BeAny matcher.
type anyMatcher struct{}

// FailureMessage returns an empty string since BeAny always matches.
func (anyMatcher) FailureMessage(any) string {
	return ""
}

// Match always returns true - matches any value.
func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
	lastErr   error
}

func (m *satisfyMatcher[T]) FailureMessage(actual any) string {
	if m.lastErr != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, m.lastErr)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (m *satisfyMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)

	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, *new(T), actual)
	}

	m.lastErr = m.predicate(val)

	return m.lastErr == nil, nil
}

type uuidMatcher struct{}

func (uuidMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %#v to be a non-nil UUID", actual)
}

func (uuidMatcher) Match(actual any) (bool, error) {
	switch v := actual.(type) {
	case uuid.UUID:
		return v != uuid.Nil, nil
	case string:
		id, err := uuid.Parse(v)

		return err == nil && id != uuid.Nil, nil
	default:
		return false, fmt.Errorf("%w: expected string or uuid.UUID, got %T", errTypeMismatch, actual)
	}
}

// paramSource is implemented by handles that expose call params.
type paramSource interface {
	Params() core.Params
}

func paramsOf(actual any) (core.Params, error) {
	switch v := actual.(type) {
	case core.Params:
		return v, nil
	case paramSource:
		return v.Params(), nil
	default:
		return nil, fmt.Errorf("%w: expected params or a captured call, got %T", errTypeMismatch, actual)
	}
}
