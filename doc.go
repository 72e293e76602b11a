// Package freqwin is an in-memory toolkit for frequency-window matching
// over bounded alphabets, plus a pair of classic integer-scan kernels.
//
// 🚀 What is freqwin?
//
//	A small, focused library that brings together:
//		• Sliding-window matchers: permutation membership & budgeted replacement
//		• Frequency profiles: fixed 26-slot count vectors with O(26) updates
//		• Order verification: word lists under a custom alphabet ranking
//		• Integer scans: longest consecutive run & first missing positive
//
// ✨ Why choose freqwin?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure functions – no I/O, no goroutines, no hidden deps
//   - Predictable costs – every operation documents its exact complexity
//   - Explicit contracts – sentinel errors instead of panics on bad input
//
// Under the hood, everything is organized under three subpackages:
//
//	window/   — Profile, ContainsPermutation, LongestReplacement
//	lexorder/ — IsSorted under a caller-supplied alphabet ranking
//	intseq/   — LongestConsecutive, FirstMissingPositive
//
// Quick ASCII example:
//
//	text:    e i d b a o o o
//	window:      [b a]          ← profile {a:1, b:1}
//	pattern:      a b           ← profile {a:1, b:1}  ✓ match
//
// Dive into each package's doc.go for algorithm outlines, worked examples,
// and the exact error contracts.
//
//	go get github.com/katalvlaran/freqwin
package freqwin
