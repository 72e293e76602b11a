// Package window defines the frequency profile type, options, and sentinel
// errors shared by the sliding-window matchers.
package window

import "errors"

// AlphabetSize is the number of symbols every profile counts over:
// 26 consecutive letters starting at Options.Base.
const AlphabetSize = 26

// Sentinel errors for window operations.
var (
	// ErrAlphabet indicates an input character outside the configured alphabet.
	ErrAlphabet = errors.New("window: character outside the configured alphabet")

	// ErrNegativeBudget indicates a negative replacement budget.
	ErrNegativeBudget = errors.New("window: replacement budget must be non-negative")
)

// Options configures the alphabet used by the sliding-window matchers.
//
// Fields:
//   - Base — the first letter of the 26-symbol alphabet, typically 'a' or 'A'.
//     Every input character must fall in [Base, Base+AlphabetSize).
//
// Example:
//
//	opts := window.Options{Base: 'A'} // uppercase inputs
//	n, err := window.LongestReplacement("ABAB", 2, &opts)
type Options struct {
	Base byte
}

// DefaultOptions returns Options for the lowercase alphabet 'a'..'z'.
func DefaultOptions() Options {
	return Options{Base: 'a'}
}

// Profile is a fixed-size count vector over the bounded alphabet:
// slot i counts occurrences of the letter Base+i within some window.
// Invariant: the sum of all slots equals the window length.
type Profile [AlphabetSize]int

// Equal reports whether p and q hold identical counts in every slot.
// Two all-zero profiles are equal: the empty multiset matches the
// empty window.
func (p *Profile) Equal(q *Profile) bool {
	for i := 0; i < AlphabetSize; i++ {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// index maps c to its profile slot, or reports ErrAlphabet when c is not
// one of the AlphabetSize letters starting at base.
func index(c, base byte) (int, error) {
	i := int(c) - int(base)
	if i < 0 || i >= AlphabetSize {
		return 0, ErrAlphabet
	}

	return i, nil
}
