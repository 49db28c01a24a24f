package core

import "fmt"

// Method is a typed handle on one method of a double. R is the method's
// success payload type; Call narrows stubbed payloads to it.
//
// Doubles hold one Method per interface method and forward to it.
type Method[R any] struct {
	engine *Engine
	name   string
}

// NewMethod binds methodName on engine to payload type R.
func NewMethod[R any](engine *Engine, methodName string) *Method[R] {
	return &Method[R]{engine: engine, name: methodName}
}

// Call records the invocation and returns the next registered response as R.
// A nil payload yields R's zero value.
func (m *Method[R]) Call(params ...Param) (R, error) {
	var zero R

	payload, err := m.engine.Call(m.name, Args(params...))
	if err != nil {
		return zero, err
	}

	if payload == nil {
		return zero, nil
	}

	value, ok := payload.(R)
	if !ok {
		return zero, &PayloadTypeError{
			Mock:     m.engine.name,
			Method:   m.name,
			Expected: fmt.Sprintf("%T", &zero)[1:],
			Actual:   fmt.Sprintf("%T", payload),
		}
	}

	return value, nil
}

// Captured returns the params of every call to this method, in call order.
func (m *Method[R]) Captured() []Params {
	return m.engine.ParamCaptured(m.name)
}

// Fails queues one failure response per error.
func (m *Method[R]) Fails(errs ...error) error {
	responses := make([]StubResponse, len(errs))
	for i, err := range errs {
		responses[i] = Fail(err)
	}

	return m.engine.Register(m.name, responses...)
}

// Name returns the method name.
func (m *Method[R]) Name() string {
	return m.name
}

// Pending returns how many registered responses are still unused.
func (m *Method[R]) Pending() int {
	return m.engine.Pending(m.name)
}

// Responds queues responses as given, allowing payloads and failures to be mixed.
func (m *Method[R]) Responds(responses ...StubResponse) error {
	return m.engine.Register(m.name, responses...)
}

// Returns queues one payload response per value.
func (m *Method[R]) Returns(values ...R) error {
	responses := make([]StubResponse, len(values))
	for i, value := range values {
		responses[i] = Return(value)
	}

	return m.engine.Register(m.name, responses...)
}

// Verify checks the call count. With no count given it expects exactly one call.
// Only the first count is used.
func (m *Method[R]) Verify(count ...VerifyCount) (*Verified, error) {
	expected := Exactly(1)
	if len(count) > 0 {
		expected = count[0]
	}

	return m.engine.Verify(m.name, expected)
}
