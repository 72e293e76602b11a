package intseq

// LongestConsecutive — length of the longest run of consecutive integers.
//
// Description:
//
//	Returns the length of the longest chain v, v+1, v+2, … whose members
//	are all present in nums. Duplicates contribute nothing; order is
//	irrelevant.
//
// Algorithm Outline:
//  1. Insert every value into a set, deduplicating and giving O(1)
//     average membership tests.
//  2. For each distinct value v, start counting only when v-1 is absent:
//     v is then the minimum of its run, so each run is counted exactly
//     once, from its start.
//  3. From such a start, probe v+1, v+2, … until the chain breaks,
//     tracking the longest chain seen.
//
// Complexity:
//
//	Time   = O(n) average — each element is visited at most twice
//	         (once as a candidate start, once inside a single chain walk)
//	Memory = O(n)
//
// An empty collection yields 0. nums is not mutated.
func LongestConsecutive(nums []int) int {
	if len(nums) == 0 {
		return 0
	}

	set := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		set[v] = struct{}{}
	}

	best := 1
	for v := range set {
		if _, has := set[v-1]; has {
			continue // not the minimum of its run
		}

		length := 1
		for next := v + 1; ; next++ {
			if _, has := set[next]; !has {
				break
			}
			length++
		}
		if length > best {
			best = length
		}
	}

	return best
}
