package core

import "fmt"

// VerifyCount is a predicate over the number of recorded calls to a method.
type VerifyCount interface {
	// Satisfied reports whether count calls meet the expectation.
	Satisfied(count int) bool
	String() string
}

// AtLeast requires n or more calls.
func AtLeast(n int) VerifyCount {
	return calledAtLeast(n)
}

// AtLeastOnce is shorthand for AtLeast(1).
func AtLeastOnce() VerifyCount {
	return AtLeast(1)
}

// AtMost requires no more than n calls.
func AtMost(n int) VerifyCount {
	return calledAtMost(n)
}

// Exactly requires exactly n calls.
func Exactly(n int) VerifyCount {
	return calledExactly(n)
}

// Never is shorthand for Exactly(0).
func Never() VerifyCount {
	return calledNever{}
}

type calledAtLeast int

func (n calledAtLeast) Satisfied(count int) bool {
	return count >= int(n)
}

func (n calledAtLeast) String() string {
	return fmt.Sprintf("at least %d", int(n))
}

func (n calledAtLeast) bound() int { return int(n) }

type calledAtMost int

func (n calledAtMost) Satisfied(count int) bool {
	return count <= int(n)
}

func (n calledAtMost) String() string {
	return fmt.Sprintf("at most %d", int(n))
}

func (n calledAtMost) bound() int { return int(n) }

type calledExactly int

func (n calledExactly) Satisfied(count int) bool {
	return count == int(n)
}

func (n calledExactly) String() string {
	return fmt.Sprintf("exactly %d", int(n))
}

func (n calledExactly) bound() int { return int(n) }

type calledNever struct{}

func (calledNever) Satisfied(count int) bool {
	return count == 0
}

func (calledNever) String() string {
	return "never"
}

// bounded is implemented by the counts that carry a caller-supplied n.
type bounded interface {
	bound() int
}

// validateCount rejects counts built from a negative n.
func validateCount(count VerifyCount) error {
	if count == nil {
		return fmt.Errorf("%w: nil count", ErrInvalidCount)
	}

	if b, ok := count.(bounded); ok && b.bound() < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidCount, count)
	}

	return nil
}
