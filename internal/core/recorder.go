package core

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// CallRecorder is an append-only record of the invocations made against one double.
// It is pure bookkeeping: it never fails and holds no stubbing policy.
type CallRecorder struct {
	mu       sync.Mutex // Protects seq, byMethod and all
	seq      uint64
	byMethod map[string][]*CapturedCall
	all      []*CapturedCall
}

// NewCallRecorder creates an empty recorder.
func NewCallRecorder() *CallRecorder {
	return &CallRecorder{byMethod: make(map[string][]*CapturedCall)}
}

// AllCalls returns every recorded call across all methods, ordered by sequence index.
func (r *CallRecorder) AllCalls() []*CapturedCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*CapturedCall, len(r.all))
	copy(out, r.all)

	return out
}

// CallsFor returns the calls recorded for methodName in call order.
// The returned slice is a copy; history cannot be reordered or truncated through it.
func (r *CallRecorder) CallsFor(methodName string) []*CapturedCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	calls := r.byMethod[methodName]
	out := make([]*CapturedCall, len(calls))
	copy(out, calls)

	return out
}

// Len returns the total number of recorded calls.
func (r *CallRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.all)
}

// MarkConsumed flags call as accounted for by a verification. Idempotent.
func (r *CallRecorder) MarkConsumed(call *CapturedCall) {
	if call == nil {
		return
	}

	call.consumed.Store(true)
}

// Record appends a new call with the next sequence index.
func (r *CallRecorder) Record(methodName string, params Params) *CapturedCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++

	call := &CapturedCall{
		method: methodName,
		params: params.clone(),
		seq:    r.seq,
	}

	r.byMethod[methodName] = append(r.byMethod[methodName], call)
	r.all = append(r.all, call)

	return call
}

// CapturedCall is one recorded invocation.
// Everything but the consumed flag is fixed at record time.
type CapturedCall struct {
	method   string
	params   Params
	seq      uint64
	consumed atomic.Bool
}

// Consumed reports whether a verification has accounted for this call.
func (c *CapturedCall) Consumed() bool {
	return c.consumed.Load()
}

// Method returns the name of the method that was called.
func (c *CapturedCall) Method() string {
	return c.method
}

// Params returns a copy of the parameters passed to the call.
func (c *CapturedCall) Params() Params {
	return c.params.clone()
}

// Seq returns the call's sequence index. Indices start at 1 and strictly
// increase across all methods of the recording double.
func (c *CapturedCall) Seq() uint64 {
	return c.seq
}

// String renders the call as method(params)#seq.
func (c *CapturedCall) String() string {
	return c.method + c.params.String() + "#" + strconv.FormatUint(c.seq, 10)
}
