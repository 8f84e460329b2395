package services

import (
	"fmt"

	"github.com/calendlam/calendlam/internal/core/domain"
)

// Impose reorders one signature from reading order into print order.
//
// Sheet i (0-based) takes the pair of pages i and n-1-i, working from the
// outside of the fold inwards. Even sheets emit the outer-end page first,
// odd sheets the outer-start page first, so that recto and verso line up
// with the fold on every sheet once the stack is printed double-sided,
// folded once and stitched:
//
//	[p0 p1 p2 p3] -> [p3 p0 p1 p2]
//
// The result is a permutation of the input and Unimpose reverses it.
// Empty input yields empty output; an odd number of pages fails with
// domain.ErrInvariantViolation.
func Impose[T any](pages []T) ([]T, error) {
	n := len(pages)
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: cannot impose %d pages, count must be even",
			domain.ErrInvariantViolation, n)
	}

	out := make([]T, 0, n)
	for i := 0; i < n/2; i++ {
		start, end := i, n-1-i
		if i%2 == 0 {
			out = append(out, pages[end], pages[start])
		} else {
			out = append(out, pages[start], pages[end])
		}
	}
	return out, nil
}

// Unimpose maps a print order produced by Impose back to reading order.
func Unimpose[T any](printed []T) ([]T, error) {
	n := len(printed)
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: cannot unimpose %d pages, count must be even",
			domain.ErrInvariantViolation, n)
	}

	out := make([]T, n)
	for i := 0; i < n/2; i++ {
		start, end := i, n-1-i
		a, b := printed[2*i], printed[2*i+1]
		if i%2 == 0 {
			out[end], out[start] = a, b
		} else {
			out[start], out[end] = a, b
		}
	}
	return out, nil
}
