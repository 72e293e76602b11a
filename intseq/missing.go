package intseq

// FirstMissingPositive — smallest positive integer absent from nums.
//
// Description:
//
//	Returns the smallest integer ≥ 1 that does not occur in nums, which
//	may contain negatives, zeros, duplicates, and values larger than
//	len(nums). No auxiliary set is allocated: the array itself serves as
//	the presence bitmap, using the sign of each slot as the flag.
//
// Algorithm Outline:
//  1. Scan for the value 1; if absent, the answer is 1 immediately.
//  2. Clamp every value the bitmap cannot express (≤ 0 or > n) to 1,
//     which step 1 proved present, so no information is lost.
//  3. For each value a = |nums[i]|, mark a as present by negating the
//     slot at index a; the value n wraps to slot 0, since valid indices
//     run 0..n-1 only.
//  4. Scan slots 1..n-1: the first still-positive slot names the missing
//     integer. If none, a positive slot 0 means n is missing; otherwise
//     1..n are all present and the answer is n+1.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1) extra
//
// Destructive: nums is rewritten in place and its contents are
// meaningless afterward. Callers needing the original must copy first.
// An empty nums yields 1.
func FirstMissingPositive(nums []int) int {
	n := len(nums)

	present := false
	for _, v := range nums {
		if v == 1 {
			present = true
			break
		}
	}
	if !present {
		return 1
	}

	for i, v := range nums {
		if v <= 0 || v > n {
			nums[i] = 1
		}
	}

	for i := 0; i < n; i++ {
		a := abs(nums[i])
		if a == n {
			nums[0] = -abs(nums[0])
		} else {
			nums[a] = -abs(nums[a])
		}
	}

	for i := 1; i < n; i++ {
		if nums[i] > 0 {
			return i
		}
	}
	if nums[0] > 0 {
		return n
	}

	return n + 1
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
