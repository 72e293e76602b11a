package lexorder_test

import (
	"testing"

	"github.com/katalvlaran/freqwin/lexorder"
	"github.com/stretchr/testify/assert"
)

// stdOrder is the ordinary alphabet ranking used by most fixtures.
const stdOrder = "abcdefghijklmnopqrstuvwxyz"

// TestIsSorted_CanonicalTrue verifies the hello/little fixture under an
// order that ranks 'h' before 'l'.
func TestIsSorted_CanonicalTrue(t *testing.T) {
	ok, err := lexorder.IsSorted(
		[]string{"hello", "little"},
		"hlabcdefgijkmnopqrstuvwxyz",
	)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// TestIsSorted_CanonicalFalse verifies word/world/row breaks the same order:
// 'd' outranks 'l' at the first difference of the first pair.
func TestIsSorted_CanonicalFalse(t *testing.T) {
	ok, err := lexorder.IsSorted(
		[]string{"word", "world", "row"},
		"hlabcdefgijkmnopqrstuvwxyz",
	)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// TestIsSorted_Trivial covers the degenerate lists: empty and single-word
// lists are sorted by definition.
func TestIsSorted_Trivial(t *testing.T) {
	ok, err := lexorder.IsSorted(nil, stdOrder)
	assert.NoError(t, err)
	assert.True(t, ok, "empty list is trivially sorted")

	ok, err = lexorder.IsSorted([]string{"zebra"}, stdOrder)
	assert.NoError(t, err)
	assert.True(t, ok, "single word is trivially sorted")
}

// TestIsSorted_PrefixRule exercises the strict-prefix extension in both
// directions: the shorter word must come first.
func TestIsSorted_PrefixRule(t *testing.T) {
	ok, err := lexorder.IsSorted([]string{"app", "apple"}, stdOrder)
	assert.NoError(t, err)
	assert.True(t, ok, "a strict prefix sorts before its extension")

	ok, err = lexorder.IsSorted([]string{"apple", "app"}, stdOrder)
	assert.NoError(t, err)
	assert.False(t, ok, "an extension must not precede its strict prefix")
}

// TestIsSorted_EqualWords verifies equal adjacent words are non-decreasing.
func TestIsSorted_EqualWords(t *testing.T) {
	ok, err := lexorder.IsSorted([]string{"same", "same"}, stdOrder)
	assert.NoError(t, err)
	assert.True(t, ok, "equal words satisfy a non-decreasing order")
}

// TestIsSorted_DuplicateOrderSymbol ensures a malformed ranking is rejected
// up front with ErrBadOrder.
func TestIsSorted_DuplicateOrderSymbol(t *testing.T) {
	_, err := lexorder.IsSorted([]string{"ab"}, "aab")
	assert.ErrorIs(t, err, lexorder.ErrBadOrder)
}

// TestIsSorted_UnknownSymbol ensures a word character with no rank surfaces
// ErrUnknownSymbol instead of a silent map miss.
func TestIsSorted_UnknownSymbol(t *testing.T) {
	_, err := lexorder.IsSorted([]string{"ax", "a!"}, stdOrder)
	assert.ErrorIs(t, err, lexorder.ErrUnknownSymbol)
}

// TestIsSorted_OrderReversal flips the alphabet: a list sorted under the
// ordinary ranking fails under the reversed one, and vice versa.
func TestIsSorted_OrderReversal(t *testing.T) {
	reversed := "zyxwvutsrqponmlkjihgfedcba"

	ok, err := lexorder.IsSorted([]string{"alpha", "beta"}, stdOrder)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = lexorder.IsSorted([]string{"alpha", "beta"}, reversed)
	assert.NoError(t, err)
	assert.False(t, ok, "reversed ranking puts 'b' before 'a'")

	ok, err = lexorder.IsSorted([]string{"beta", "alpha"}, reversed)
	assert.NoError(t, err)
	assert.True(t, ok)
}
