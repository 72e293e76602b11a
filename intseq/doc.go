// Package intseq provides scan kernels over unordered integer collections:
// the longest run of consecutive values, and the smallest missing positive.
//
// ✨ Key features:
//   - LongestConsecutive: O(n) average via set membership, duplicates ignored
//   - FirstMissingPositive: O(n) time, O(1) extra memory, reusing the input
//     array itself as a presence bitmap (destructive — see its contract)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/freqwin/intseq"
//
//	intseq.LongestConsecutive([]int{100, 4, 200, 1, 3, 2}) // 4 (run 1,2,3,4)
//	intseq.FirstMissingPositive([]int{3, 4, -1, 1})        // 2
//
// Both functions are single-threaded pure scans; only FirstMissingPositive
// mutates its input.
package intseq
