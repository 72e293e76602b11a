// Package window implements sliding-window matchers over a bounded
// 26-letter alphabet, built on fixed-size frequency profiles.
//
// 🚀 What is a frequency window?
//
//	A contiguous range of a string whose character counts are maintained
//	incrementally as the range slides: each step adjusts exactly two
//	slots of a 26-slot count vector, so the aggregate never has to be
//	recomputed from scratch. Sliding windows power:
//	  • Anagram / permutation detection in streams of text
//	  • Tolerant run detection (uniform up to k replacements)
//	  • Any online multiset comparison over a small alphabet
//
// ✨ Key features:
//   - ContainsPermutation: exact multiset match of a pattern anywhere in a text
//   - LongestReplacement: longest window made uniform within a replacement budget
//   - Profile: the shared 26-slot count vector with O(26) equality
//   - Alphabet base ('a' or 'A') selected via Options
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/freqwin/window"
//
//	ok, err := window.ContainsPermutation("ab", "eidbaooo", nil)
//	// ok == true: the window at positions 3..4 holds the multiset {a,b}
//
//	opts := window.Options{Base: 'A'}
//	n, err := window.LongestReplacement("AABABBA", 1, &opts)
//	// n == 4
//
// Performance:
//
//   - ContainsPermutation: O(n·26) time, O(26) memory
//   - LongestReplacement:  O(n) time, O(26) memory
//
// See example_test.go for runnable examples and each function's doc
// comment for the full algorithm outline and error contract.
package window
