package core_test

// This file contains regression tests for engines shared between goroutines.

import (
	"errors"
	"sync"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/impmock/internal/core"
)

// TestEngine_ConcurrentCalls_EachStubUsedOnce verifies that every registered
// response goes to exactly one caller and the surplus callers are unstubbed.
func TestEngine_ConcurrentCalls_EachStubUsedOnce(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	const (
		numStubs      = 50
		numGoroutines = 80
	)

	engine := core.NewEngine()

	responses := make([]core.StubResponse, numStubs)
	for i := range numStubs {
		responses[i] = core.Return(i)
	}

	g.Expect(engine.Register("m", responses...)).To(Succeed())

	var (
		mu        sync.Mutex
		seen      = make(map[int]int)
		unstubbed int
		wg        sync.WaitGroup
	)

	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(idx int) {
			defer wg.Done()

			payload, err := engine.Call("m", core.Args(core.Arg("caller", idx)))

			mu.Lock()
			defer mu.Unlock()

			if errors.Is(err, core.ErrUnstubbedCall) {
				unstubbed++

				return
			}

			value, _ := payload.(int)
			seen[value]++
		}(i)
	}

	wg.Wait()

	g.Expect(seen).To(HaveLen(numStubs))

	for value, count := range seen {
		g.Expect(count).To(Equal(1), "payload %d handed out more than once", value)
	}

	g.Expect(unstubbed).To(Equal(numGoroutines - numStubs))
	g.Expect(engine.Pending("m")).To(Equal(0))

	_, err := engine.Verify("m", core.Exactly(numGoroutines))
	g.Expect(err).NotTo(HaveOccurred())
}

// TestEngine_ConcurrentCalls_UniqueIncreasingSequence uses property-based
// testing to verify sequence indices stay unique and ordered under contention.
func TestEngine_ConcurrentCalls_UniqueIncreasingSequence(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		numGoroutines := rapid.IntRange(2, 50).Draw(rt, "numGoroutines")
		methods := []string{"a", "b", "c"}

		engine := core.NewEngine()

		var wg sync.WaitGroup
		wg.Add(numGoroutines)

		for i := range numGoroutines {
			go func(idx int) {
				defer wg.Done()

				_, _ = engine.Call(methods[idx%len(methods)], nil)
			}(i)
		}

		wg.Wait()

		all := engine.Recorder().AllCalls()
		if len(all) != numGoroutines {
			rt.Fatalf("expected %d calls, got %d", numGoroutines, len(all))
		}

		for i, call := range all {
			if call.Seq() != uint64(i+1) {
				rt.Fatalf("call %d has seq %d", i, call.Seq())
			}
		}
	})
}
