// Package core provides the internal implementation of impmock's call
// recording, stubbing and verification engine.
package core

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"
)

// Engine is the facade a test double delegates to. It owns a CallRecorder and
// one FIFO queue of stub responses per method.
//
// Every call is recorded, whether or not a response is available. Responses
// are handed out in registration order and each is used at most once.
type Engine struct {
	name     string
	trace    Logger
	recorder *CallRecorder

	mu    sync.Mutex              // Protects stubs and serialises Record with dequeue
	stubs map[string]*queue.Queue // method name -> queue of StubResponse
	order []string                // methods in first-registration order
}

// Logger receives trace lines. *testing.T satisfies it.
type Logger interface {
	Logf(format string, args ...any)
}

// Option configures an Engine.
type Option func(*Engine)

// NewEngine creates an engine with no recorded calls and no registered responses.
func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		recorder: NewCallRecorder(),
		stubs:    make(map[string]*queue.Queue),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// WithName labels the engine; the label prefixes every error and trace line.
func WithName(name string) Option {
	return func(e *Engine) {
		e.name = name
	}
}

// WithTrace logs every registration, call and verification to logger.
func WithTrace(logger Logger) Option {
	return func(e *Engine) {
		e.trace = logger
	}
}

// Call records the invocation and returns the next registered response for methodName.
//
// With no response left it fails with *UnstubbedCallError. A failure response
// is returned as the error unchanged.
func (e *Engine) Call(methodName string, params Params) (any, error) {
	e.mu.Lock()

	call := e.recorder.Record(methodName, params)

	stubQueue, ok := e.stubs[methodName]
	if !ok || stubQueue.Length() == 0 {
		e.mu.Unlock()
		e.tracef("call %v -> unstubbed", call)

		return nil, &UnstubbedCallError{
			Mock:   e.name,
			Method: methodName,
			Params: call.Params(),
			Seq:    call.Seq(),
		}
	}

	response, _ := stubQueue.Remove().(StubResponse)
	e.mu.Unlock()

	e.tracef("call %v -> %v", call, response)

	return response.outcome()
}

// Name returns the label given with WithName.
func (e *Engine) Name() string {
	return e.name
}

// ParamCaptured returns the params of every call to methodName, in call order.
// It does not touch verification state.
func (e *Engine) ParamCaptured(methodName string) []Params {
	calls := e.recorder.CallsFor(methodName)

	out := make([]Params, len(calls))
	for i, call := range calls {
		out[i] = call.Params()
	}

	return out
}

// Pending returns how many registered responses for methodName are still unused.
func (e *Engine) Pending(methodName string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if stubQueue, ok := e.stubs[methodName]; ok {
		return stubQueue.Length()
	}

	return 0
}

// Recorder exposes the underlying call record.
func (e *Engine) Recorder() *CallRecorder {
	return e.recorder
}

// Register appends responses to the queue for methodName.
// Registrations accumulate; earlier unused responses stay ahead of these.
// An empty list fails with ErrEmptyRegistration and a Fail(nil) response with
// ErrNilFailure; in both cases nothing is queued.
func (e *Engine) Register(methodName string, responses ...StubResponse) error {
	if len(responses) == 0 {
		return fmt.Errorf("%w for %s%s", ErrEmptyRegistration, mockPrefix(e.name), methodName)
	}

	for i, response := range responses {
		if response.failed && response.failure == nil {
			return fmt.Errorf("%w: %s%s response %d", ErrNilFailure, mockPrefix(e.name), methodName, i)
		}
	}

	e.mu.Lock()

	stubQueue, ok := e.stubs[methodName]
	if !ok {
		stubQueue = queue.New()
		e.stubs[methodName] = stubQueue
		e.order = append(e.order, methodName)
	}

	for _, response := range responses {
		response.methodName = methodName
		stubQueue.Add(response)
	}

	pending := stubQueue.Length()
	e.mu.Unlock()

	e.tracef("register %s: %d response(s), %d pending", methodName, len(responses), pending)

	return nil
}

// Verify checks the number of calls to methodName against count.
//
// On success every call to methodName is marked consumed and the calls are
// returned for inspection. Verifying again without new calls gives the same result.
func (e *Engine) Verify(methodName string, count VerifyCount) (*Verified, error) {
	err := validateCount(count)
	if err != nil {
		return nil, err
	}

	calls := e.recorder.CallsFor(methodName)

	if !count.Satisfied(len(calls)) {
		e.tracef("verify %s %v: failed with %d call(s)", methodName, count, len(calls))

		return nil, &VerificationError{
			Mock:     e.name,
			Method:   methodName,
			Expected: count,
			Actual:   len(calls),
		}
	}

	for _, call := range calls {
		e.recorder.MarkConsumed(call)
	}

	e.tracef("verify %s %v: ok with %d call(s)", methodName, count, len(calls))

	return &Verified{method: methodName, calls: calls}, nil
}

// VerifyNoMoreInteractions fails if any recorded call has not been accounted
// for by a successful Verify.
func (e *Engine) VerifyNoMoreInteractions() error {
	var unverified []MethodCount

	index := make(map[string]int)

	for _, call := range e.recorder.AllCalls() {
		if call.Consumed() {
			continue
		}

		i, seen := index[call.Method()]
		if !seen {
			i = len(unverified)
			index[call.Method()] = i
			unverified = append(unverified, MethodCount{Method: call.Method()})
		}

		unverified[i].Count++
	}

	if len(unverified) > 0 {
		e.tracef("verify no more interactions: %s", joinCounts(unverified))

		return &UnverifiedInteractionsError{Mock: e.name, Unverified: unverified}
	}

	return nil
}

// VerifyStubsConsumed fails if any registered response was never handed out.
func (e *Engine) VerifyStubsConsumed() error {
	e.mu.Lock()

	var pending []MethodCount

	for _, methodName := range e.order {
		if n := e.stubs[methodName].Length(); n > 0 {
			pending = append(pending, MethodCount{Method: methodName, Count: n})
		}
	}

	e.mu.Unlock()

	if len(pending) > 0 {
		return &UnusedStubsError{Mock: e.name, Pending: pending}
	}

	return nil
}

func (e *Engine) tracef(format string, args ...any) {
	if e.trace == nil {
		return
	}

	e.trace.Logf(mockLabel(e.name)+format, args...)
}

// Verified is the result of a successful Verify: the calls it covered.
type Verified struct {
	method string
	calls  []*CapturedCall
}

// Calls returns the covered calls in call order.
func (v *Verified) Calls() []*CapturedCall {
	out := make([]*CapturedCall, len(v.calls))
	copy(out, v.calls)

	return out
}

// Last returns the most recent covered call, if any.
func (v *Verified) Last() (*CapturedCall, bool) {
	if len(v.calls) == 0 {
		return nil, false
	}

	return v.calls[len(v.calls)-1], true
}

// Len returns the number of covered calls.
func (v *Verified) Len() int {
	return len(v.calls)
}

// Method returns the verified method name.
func (v *Verified) Method() string {
	return v.method
}

// Params returns the params of the covered calls in call order.
func (v *Verified) Params() []Params {
	out := make([]Params, len(v.calls))
	for i, call := range v.calls {
		out[i] = call.Params()
	}

	return out
}
