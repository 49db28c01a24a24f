package future_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/impmock/future"
)

func TestGo_ResolvesWithValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fut := future.Go(func() (int, error) { return 42, nil })

	g.Eventually(fut.Done()).Should(BeClosed())

	value, err := fut.Await(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(value).To(Equal(42))
}

func TestGo_ResolvesWithError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	boom := errors.New("boom")
	fut := future.Go(func() (string, error) { return "", boom })

	_, err := fut.Await(context.Background())
	g.Expect(err).To(MatchError(boom))
}

// TestGo_CapturesPanic verifies a panicking function resolves the future
// instead of crashing the test binary.
func TestGo_CapturesPanic(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fut := future.Go(func() (int, error) { panic("bad") })

	_, err := fut.Await(context.Background())

	var panicErr *future.PanicError

	g.Expect(errors.As(err, &panicErr)).To(BeTrue())
	g.Expect(panicErr.Value).To(Equal("bad"))
	g.Expect(err.Error()).To(Equal("future panicked: bad"))
}

// TestAwait_ContextCancelled returns the context error when the future is slow.
func TestAwait_ContextCancelled(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	release := make(chan struct{})
	fut := future.Go(func() (int, error) {
		<-release

		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fut.Await(ctx)
	g.Expect(err).To(MatchError(context.Canceled))

	close(release)

	value, err := fut.Await(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(value).To(Equal(1))
}

func TestResolved(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fut := future.Resolved("done", nil)

	g.Expect(fut.Done()).To(BeClosed())

	value, err := fut.Await(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(value).To(Equal("done"))
}
