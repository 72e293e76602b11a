package window

// LongestReplacement — longest uniform window under a replacement budget.
//
// Description:
//
//	Returns the length of the longest contiguous window of s that can be
//	made entirely one repeated character by replacing at most k characters;
//	equivalently, the longest window whose length minus the count of its
//	most frequent character does not exceed k.
//
// Algorithm Outline:
//  1. Grow a window [left, right] one character to the right per step,
//     incrementing the entering character's profile slot and folding the
//     new count into maxFreq, the largest single-slot count observed so
//     far across the whole scan.
//  2. If the window would need more than k replacements, i.e.
//     (right-left+1) - maxFreq > k, shrink from the left by exactly one
//     position. One is always enough: the window grows by exactly one per
//     step, so it can overshoot the budget by at most one.
//  3. After every step, record the window length as a candidate answer.
//
// maxFreq is deliberately never recomputed when a character leaves the
// window, so it may overstate the current window's true best count.
// The answer stays correct: a stale maxFreq only ever lets the window
// stay as large as some previously valid window, never grow beyond the
// best valid size, and every recorded candidate was valid at the moment
// it was recorded.
//
// Complexity:
//
//	Time   = O(n), n = len(s)
//	Memory = O(26)
//
// Errors:
//   - ErrNegativeBudget — k < 0.
//   - ErrAlphabet       — a character of s lies outside the alphabet
//     configured by opts.
//
// s is not mutated; an empty s yields 0. A nil opts selects DefaultOptions.
func LongestReplacement(s string, k int, opts *Options) (int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if k < 0 {
		return 0, ErrNegativeBudget
	}

	var freq Profile
	left, best, maxFreq := 0, 0, 0
	for right := 0; right < len(s); right++ {
		i, err := index(s[right], o.Base)
		if err != nil {
			return 0, err
		}
		freq[i]++
		if freq[i] > maxFreq {
			maxFreq = freq[i]
		}

		if (right-left+1)-maxFreq > k {
			li, _ := index(s[left], o.Base) // validated when it entered the window
			freq[li]--
			left++
		}

		if w := right - left + 1; w > best {
			best = w
		}
	}

	return best, nil
}
