// Package lexorder verifies that word lists respect a caller-supplied
// total order over the alphabet.
//
// The order is given as a permutation-style string: the rank of a symbol
// is its index within the string. Comparison is standard lexicographic,
// extended with the rule that a strict prefix sorts before any of its
// extensions ("app" < "apple").
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/freqwin/lexorder"
//
//	ok, err := lexorder.IsSorted(
//		[]string{"hello", "little"},
//		"hlabcdefgijkmnopqrstuvwxyz",
//	)
//	// ok == true
//
// Malformed input never panics: a duplicate symbol in the order string
// reports ErrBadOrder, and a word character with no assigned rank reports
// ErrUnknownSymbol.
package lexorder
