package lexorder

import "errors"

// Sentinel errors for order verification.
var (
	// ErrBadOrder indicates the order string assigns the same symbol twice.
	ErrBadOrder = errors.New("lexorder: order string contains a duplicate symbol")

	// ErrUnknownSymbol indicates a compared word character has no rank in
	// the order string.
	ErrUnknownSymbol = errors.New("lexorder: word character not present in order string")
)

// IsSorted — word-list order verification under a custom alphabet ranking.
//
// Description:
//
//	Reports whether words is non-decreasing under the total order induced
//	by order: symbol order[i] has rank i, and lower ranks sort first.
//	Standard lexicographic comparison applies, extended with the rule that
//	a strict prefix sorts before its extension.
//
// Algorithm Outline:
//  1. Build the rank table from order; a repeated symbol is ErrBadOrder.
//  2. For each adjacent pair, scan characters left to right. At the first
//     differing position, compare ranks: a strictly greater rank in the
//     earlier word means the list is unordered; a strictly smaller rank
//     confirms the pair and the scan moves on.
//  3. If the earlier word runs past the end of the later one with all
//     compared characters equal, the later word is a strict prefix of the
//     earlier — the pair is out of order.
//
// Complexity:
//
//	Time   = O(total characters compared)
//	Memory = O(len(order))
//
// Errors:
//   - ErrBadOrder      — order contains a duplicate symbol.
//   - ErrUnknownSymbol — a character at the first differing position of
//     some pair has no rank in order.
//
// Empty and single-word lists are trivially sorted. Inputs are not mutated.
func IsSorted(words []string, order string) (bool, error) {
	rank := make(map[byte]int, len(order))
	for i := 0; i < len(order); i++ {
		if _, dup := rank[order[i]]; dup {
			return false, ErrBadOrder
		}
		rank[order[i]] = i
	}

	for i := 0; i+1 < len(words); i++ {
		ok, err := pairOrdered(words[i], words[i+1], rank)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// pairOrdered reports whether prev may precede next under rank.
func pairOrdered(prev, next string, rank map[byte]int) (bool, error) {
	for j := 0; j < len(prev); j++ {
		if j >= len(next) {
			// next is a strict prefix of prev, so it must come first.
			return false, nil
		}
		if prev[j] == next[j] {
			continue
		}

		pr, ok := rank[prev[j]]
		if !ok {
			return false, ErrUnknownSymbol
		}
		nr, ok := rank[next[j]]
		if !ok {
			return false, ErrUnknownSymbol
		}

		return pr < nr, nil
	}

	// prev is a (possibly equal) prefix of next: correctly ordered.
	return true, nil
}
