package core_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/impmock/internal/core"
)

// TestCallRecorder_Record_AssignsIncreasingSequence verifies that sequence
// indices are global across methods and strictly increasing.
func TestCallRecorder_Record_AssignsIncreasingSequence(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := core.NewCallRecorder()

	first := rec.Record("Get", core.Args(core.Arg("id", 1)))
	second := rec.Record("Save", core.Args())
	third := rec.Record("Get", core.Args(core.Arg("id", 2)))

	g.Expect(first.Seq()).To(Equal(uint64(1)))
	g.Expect(second.Seq()).To(Equal(uint64(2)))
	g.Expect(third.Seq()).To(Equal(uint64(3)))
	g.Expect(rec.Len()).To(Equal(3))
}

// TestCallRecorder_CallsFor_ReturnsMethodCallsInOrder verifies the per-method view.
func TestCallRecorder_CallsFor_ReturnsMethodCallsInOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := core.NewCallRecorder()
	rec.Record("Get", core.Args(core.Arg("id", 1)))
	rec.Record("Save", core.Args())
	rec.Record("Get", core.Args(core.Arg("id", 2)))

	calls := rec.CallsFor("Get")

	g.Expect(calls).To(HaveLen(2))
	g.Expect(calls[0].Params()).To(Equal(core.Params{{Name: "id", Value: 1}}))
	g.Expect(calls[1].Params()).To(Equal(core.Params{{Name: "id", Value: 2}}))
	g.Expect(rec.CallsFor("Delete")).To(BeEmpty())
	g.Expect(rec.CallsFor("get")).To(BeEmpty(), "method names are case-sensitive")
}

// TestCallRecorder_CallsFor_CannotCorruptHistory verifies that mutating the
// returned slice or params leaves the record intact.
func TestCallRecorder_CallsFor_CannotCorruptHistory(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := core.NewCallRecorder()
	rec.Record("Get", core.Args(core.Arg("id", 1)))
	rec.Record("Get", core.Args(core.Arg("id", 2)))

	calls := rec.CallsFor("Get")
	calls[0], calls[1] = calls[1], calls[0]

	params := rec.CallsFor("Get")[0].Params()
	params[0].Value = 99

	again := rec.CallsFor("Get")
	g.Expect(again).To(HaveLen(2))
	g.Expect(again[0].Seq()).To(Equal(uint64(1)))
	g.Expect(again[0].Params()).To(Equal(core.Params{{Name: "id", Value: 1}}))
}

// TestCallRecorder_Record_CopiesParams verifies that the caller's slice is not retained.
func TestCallRecorder_Record_CopiesParams(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := core.NewCallRecorder()
	params := core.Params{{Name: "id", Value: 1}}
	call := rec.Record("Get", params)

	params[0].Value = 2

	g.Expect(call.Params()).To(Equal(core.Params{{Name: "id", Value: 1}}))
}

// TestCallRecorder_MarkConsumed_Idempotent verifies the one-way consumed flag.
func TestCallRecorder_MarkConsumed_Idempotent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := core.NewCallRecorder()
	call := rec.Record("Get", nil)

	g.Expect(call.Consumed()).To(BeFalse())

	rec.MarkConsumed(call)
	rec.MarkConsumed(call)
	rec.MarkConsumed(nil)

	g.Expect(call.Consumed()).To(BeTrue())
	g.Expect(rec.AllCalls()[0].Consumed()).To(BeTrue())
}

// TestCallRecorder_AllCalls_OrderedBySequence uses property-based testing to
// verify the global view is the interleaved call order.
func TestCallRecorder_AllCalls_OrderedBySequence(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		methods := rapid.SliceOf(rapid.SampledFrom([]string{"Get", "Save", "Delete"})).Draw(rt, "methods")

		rec := core.NewCallRecorder()
		for i, method := range methods {
			rec.Record(method, core.Args(core.Arg("i", i)))
		}

		all := rec.AllCalls()
		if len(all) != len(methods) {
			rt.Fatalf("expected %d calls, got %d", len(methods), len(all))
		}

		for i, call := range all {
			if call.Method() != methods[i] {
				rt.Fatalf("call %d: expected %s, got %s", i, methods[i], call.Method())
			}

			if call.Seq() != uint64(i+1) {
				rt.Fatalf("call %d: expected seq %d, got %d", i, i+1, call.Seq())
			}
		}
	})
}

// TestCapturedCall_String renders method, params and sequence.
func TestCapturedCall_String(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := core.NewCallRecorder()
	call := rec.Record("Get", core.Args(core.Arg("id", 7), core.Arg("name", "x")))

	g.Expect(call.String()).To(Equal(`Get(id=7, name="x")#1`))
}
