package core

import "fmt"

// StubResponse is a canned outcome for one call: either a payload or a failure.
type StubResponse struct {
	methodName string
	payload    any
	failure    error
	failed     bool
}

// Fail builds a response that makes the call return err.
func Fail(err error) StubResponse {
	return StubResponse{failure: err, failed: true}
}

// Return builds a response that makes the call return payload.
func Return(payload any) StubResponse {
	return StubResponse{payload: payload}
}

// Failure returns the registered error, or nil for a payload response.
func (r StubResponse) Failure() error {
	return r.failure
}

// IsFailure reports whether the response carries an error instead of a payload.
func (r StubResponse) IsFailure() bool {
	return r.failed
}

// MethodName returns the method the response was registered for.
// Empty until the response is registered.
func (r StubResponse) MethodName() string {
	return r.methodName
}

// Payload returns the registered payload, or nil for a failure response.
func (r StubResponse) Payload() any {
	return r.payload
}

// String renders the response for traces.
func (r StubResponse) String() string {
	if r.failed {
		return fmt.Sprintf("fail(%v)", r.failure)
	}

	return fmt.Sprintf("return(%#v)", r.payload)
}

// outcome unpacks the response into the (payload, error) pair Call returns.
func (r StubResponse) outcome() (any, error) {
	if r.failed {
		return nil, r.failure
	}

	return r.payload, nil
}
