// Package impmock provides a strict test-double engine for Go.
// Doubles record every call, hand out pre-registered responses in order, and
// let tests verify call counts and captured parameters.
//
// This is the public API entry point. Implementation lives in internal/core.
package impmock

import (
	"github.com/toejough/impmock/internal/core"
)

// CallRecorder is the append-only record of calls made against one double.
type CallRecorder = core.CallRecorder

// NewCallRecorder creates an empty recorder.
func NewCallRecorder() *CallRecorder {
	return core.NewCallRecorder()
}

// CapturedCall is one recorded invocation.
type CapturedCall = core.CapturedCall

// Engine is the facade a test double delegates to.
type Engine = core.Engine

// NewEngine creates an engine with no recorded calls and no registered responses.
func NewEngine(opts ...Option) *Engine {
	return core.NewEngine(opts...)
}

// Option configures an Engine.
type Option = core.Option

// Logger receives trace lines. *testing.T satisfies it.
type Logger = core.Logger

// WithName labels the engine in errors and traces.
func WithName(name string) Option {
	return core.WithName(name)
}

// WithTrace logs every registration, call and verification to logger.
func WithTrace(logger Logger) Option {
	return core.WithTrace(logger)
}

// Method is a typed handle on one method of a double.
type Method[R any] = core.Method[R]

// NewMethod binds methodName on engine to payload type R.
func NewMethod[R any](engine *Engine, methodName string) *Method[R] {
	return core.NewMethod[R](engine, methodName)
}

// Param is a single named argument passed to a mocked method.
type Param = core.Param

// Params is the ordered list of named arguments for one call.
type Params = core.Params

// Arg builds a Param.
func Arg(name string, value any) Param {
	return core.Arg(name, value)
}

// Args builds Params, preserving order.
func Args(params ...Param) Params {
	return core.Args(params...)
}

// StubResponse is a canned outcome for one call.
type StubResponse = core.StubResponse

// Fail builds a response that makes the call return err.
func Fail(err error) StubResponse {
	return core.Fail(err)
}

// Return builds a response that makes the call return payload.
func Return(payload any) StubResponse {
	return core.Return(payload)
}

// Verified is the result of a successful verification.
type Verified = core.Verified

// VerifyCount is a predicate over the number of recorded calls.
type VerifyCount = core.VerifyCount

// AtLeast requires n or more calls.
func AtLeast(n int) VerifyCount {
	return core.AtLeast(n)
}

// AtLeastOnce is shorthand for AtLeast(1).
func AtLeastOnce() VerifyCount {
	return core.AtLeastOnce()
}

// AtMost requires no more than n calls.
func AtMost(n int) VerifyCount {
	return core.AtMost(n)
}

// Exactly requires exactly n calls.
func Exactly(n int) VerifyCount {
	return core.Exactly(n)
}

// Never is shorthand for Exactly(0).
func Never() VerifyCount {
	return core.Never()
}

// Errors re-exported from internal/core.

// MethodCount pairs a method name with a count.
type MethodCount = core.MethodCount

// PayloadTypeError reports a payload that does not fit the method's result type.
type PayloadTypeError = core.PayloadTypeError

// UnstubbedCallError reports a call with no registered response.
type UnstubbedCallError = core.UnstubbedCallError

// UnusedStubsError lists registered responses that were never used.
type UnusedStubsError = core.UnusedStubsError

// UnverifiedInteractionsError lists calls no verification accounted for.
type UnverifiedInteractionsError = core.UnverifiedInteractionsError

// VerificationError reports an unsatisfied call-count predicate.
type VerificationError = core.VerificationError

// Sentinel errors; the typed errors above unwrap to these.
//
//nolint:gochecknoglobals // re-exported sentinels
var (
	ErrEmptyRegistration      = core.ErrEmptyRegistration
	ErrInvalidCount           = core.ErrInvalidCount
	ErrNilFailure             = core.ErrNilFailure
	ErrParamMismatch          = core.ErrParamMismatch
	ErrPayloadType            = core.ErrPayloadType
	ErrUnstubbedCall          = core.ErrUnstubbedCall
	ErrUnusedStubs            = core.ErrUnusedStubs
	ErrUnverifiedInteractions = core.ErrUnverifiedInteractions
	ErrVerification           = core.ErrVerification
)

// TestReporter is the minimal interface impmock needs from test frameworks.
type TestReporter = core.TestReporter

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// MustRegister registers responses, failing the test on a configuration error.
func MustRegister(t TestReporter, engine *Engine, methodName string, responses ...StubResponse) {
	t.Helper()
	core.MustRegister(t, engine, methodName, responses...)
}

// MustVerify verifies methodName against count, failing the test if it does not hold.
func MustVerify(t TestReporter, engine *Engine, methodName string, count VerifyCount) *Verified {
	t.Helper()

	return core.MustVerify(t, engine, methodName, count)
}

// MustVerifyNoMoreInteractions fails the test if any engine has unverified calls.
func MustVerifyNoMoreInteractions(t TestReporter, engines ...*Engine) {
	t.Helper()
	core.MustVerifyNoMoreInteractions(t, engines...)
}

// VerifyOnCleanup checks engines for unverified calls when the test completes.
func VerifyOnCleanup(t TestReporter, engines ...*Engine) bool {
	return core.VerifyOnCleanup(t, engines...)
}
