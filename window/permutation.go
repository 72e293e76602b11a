package window

// ContainsPermutation — permutation membership over a sliding fixed window.
//
// Description:
//
//	Reports whether any contiguous window of text with the same length as
//	pattern is a character-permutation of pattern, i.e. holds the identical
//	multiset of characters.
//
// Algorithm Outline:
//  1. Let m = len(pattern), n = len(text). If m > n no window exists:
//     return false.
//  2. Build Profile(pattern) once, and the Profile of text's first m
//     characters.
//  3. Slide the window rightward one position at a time; at each position
//     compare the two profiles slot-by-slot. On the first exact match,
//     return true.
//  4. Each slide increments the slot of the character entering the window
//     and decrements the slot of the character leaving it, keeping the
//     per-step cost O(AlphabetSize) instead of O(m).
//
// An empty pattern matches vacuously: the first comparison pits two
// all-zero profiles against each other, and they are equal.
//
// Complexity:
//
//	Time   = O(m + (n-m+1)·26)
//	Memory = O(26)
//
// Errors:
//   - ErrAlphabet — a character of pattern or text lies outside the
//     alphabet configured by opts (characters of text past the last
//     window reached are never inspected).
//
// Neither input is mutated. A nil opts selects DefaultOptions.
func ContainsPermutation(pattern, text string, opts *Options) (bool, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	m, n := len(pattern), len(text)
	if m > n {
		return false, nil
	}

	// Seed both profiles from pattern and text's first window.
	var want, have Profile
	for i := 0; i < m; i++ {
		pi, err := index(pattern[i], o.Base)
		if err != nil {
			return false, err
		}
		want[pi]++

		ti, err := index(text[i], o.Base)
		if err != nil {
			return false, err
		}
		have[ti]++
	}

	for i := 0; i < n-m; i++ {
		if want.Equal(&have) {
			return true, nil
		}

		in, err := index(text[i+m], o.Base)
		if err != nil {
			return false, err
		}
		have[in]++

		out, _ := index(text[i], o.Base) // validated when it entered the window
		have[out]--
	}

	return want.Equal(&have), nil
}
