package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. The typed errors below unwrap to these, so callers can
// use errors.Is for the kind and errors.As for the details.
var (
	ErrEmptyRegistration      = errors.New("no responses to register")
	ErrInvalidCount           = errors.New("invalid verify count")
	ErrNilFailure             = errors.New("failure response carries a nil error")
	ErrParamMismatch          = errors.New("params do not match")
	ErrPayloadType            = errors.New("stubbed payload has the wrong type")
	ErrUnstubbedCall          = errors.New("unstubbed call")
	ErrUnusedStubs            = errors.New("registered responses were never used")
	ErrUnverifiedInteractions = errors.New("unverified interactions")
	ErrVerification           = errors.New("verification failed")
)

// MethodCount pairs a method name with a number of calls or responses.
type MethodCount struct {
	Method string
	Count  int
}

func (mc MethodCount) String() string {
	return fmt.Sprintf("%s x%d", mc.Method, mc.Count)
}

// PayloadTypeError reports a stubbed payload that cannot be narrowed to the
// method's declared result type.
type PayloadTypeError struct {
	Mock     string
	Method   string
	Expected string
	Actual   string
}

func (e *PayloadTypeError) Error() string {
	return fmt.Sprintf("%s%s: stubbed payload is %s, want %s", mockPrefix(e.Mock), e.Method, e.Actual, e.Expected)
}

func (e *PayloadTypeError) Unwrap() error {
	return ErrPayloadType
}

// UnstubbedCallError reports a call for which no response was registered.
type UnstubbedCallError struct {
	Mock   string
	Method string
	Params Params
	Seq    uint64
}

func (e *UnstubbedCallError) Error() string {
	return fmt.Sprintf("%s%s%v: no registered response left (call #%d)", mockPrefix(e.Mock), e.Method, e.Params, e.Seq)
}

func (e *UnstubbedCallError) Unwrap() error {
	return ErrUnstubbedCall
}

// UnusedStubsError lists methods that still have registered responses queued.
type UnusedStubsError struct {
	Mock    string
	Pending []MethodCount
}

func (e *UnusedStubsError) Error() string {
	return fmt.Sprintf("%sresponses registered but never used: %s", mockLabel(e.Mock), joinCounts(e.Pending))
}

func (e *UnusedStubsError) Unwrap() error {
	return ErrUnusedStubs
}

// UnverifiedInteractionsError lists calls no verification accounted for.
type UnverifiedInteractionsError struct {
	Mock       string
	Unverified []MethodCount
}

func (e *UnverifiedInteractionsError) Error() string {
	return fmt.Sprintf("%sunverified interactions: %s", mockLabel(e.Mock), joinCounts(e.Unverified))
}

// Methods returns the names of the methods with unverified calls.
func (e *UnverifiedInteractionsError) Methods() []string {
	names := make([]string, len(e.Unverified))
	for i, mc := range e.Unverified {
		names[i] = mc.Method
	}

	return names
}

func (e *UnverifiedInteractionsError) Unwrap() error {
	return ErrUnverifiedInteractions
}

// VerificationError reports a call count that did not satisfy the expected predicate.
type VerificationError struct {
	Mock     string
	Method   string
	Expected VerifyCount
	Actual   int
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s%s: expected to be called %v, but was called %d time(s)",
		mockPrefix(e.Mock), e.Method, e.Expected, e.Actual)
}

func (e *VerificationError) Unwrap() error {
	return ErrVerification
}

func joinCounts(counts []MethodCount) string {
	parts := make([]string, len(counts))
	for i, mc := range counts {
		parts[i] = mc.String()
	}

	return strings.Join(parts, ", ")
}

func mockPrefix(name string) string {
	if name == "" {
		return ""
	}

	return name + "."
}

func mockLabel(name string) string {
	if name == "" {
		return ""
	}

	return name + ": "
}
