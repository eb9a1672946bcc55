package tabu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTabuList_SizeIsConstant(t *testing.T) {
	tl := newTabuList[int](4)
	require.Equal(t, 4, tl.len())
	for _, s := range tl.entries() {
		require.False(t, s.ok, "starts with none entries")
	}

	for i := 0; i < 10; i++ {
		tl.push(some(i))
		require.Equal(t, 4, tl.len())
		require.Len(t, tl.entries(), 4)
	}
	tl.push(none[int]())
	require.Equal(t, 4, tl.len())
}

func TestTabuList_FIFOEviction(t *testing.T) {
	tl := newTabuList[int](3)
	tl.push(some(1))
	tl.push(some(2))
	tl.push(some(3))
	require.True(t, tl.contains(1))

	tl.push(some(4)) // evicts 1
	require.False(t, tl.contains(1))
	require.True(t, tl.contains(2))
	require.Equal(t, []slot[int]{some(2), some(3), some(4)}, tl.entries())
}

func TestTabuList_NoneNeverMatches(t *testing.T) {
	tl := newTabuList[int](2)
	tl.push(none[int]())
	tl.push(none[int]())
	require.False(t, tl.contains(0), "zero value must not look tabu")
}

func TestTabuList_DuplicatesCounted(t *testing.T) {
	tl := newTabuList[string](3)
	tl.push(some("a"))
	tl.push(some("a"))
	tl.push(some("b"))

	tl.push(none[string]()) // evicts first "a"
	require.True(t, tl.contains("a"), "second occurrence still present")

	tl.push(none[string]()) // evicts second "a"
	require.False(t, tl.contains("a"))
	require.True(t, tl.contains("b"))
}

func TestTabuList_ZeroCapacity(t *testing.T) {
	tl := newTabuList[int](0)
	tl.push(some(1))
	require.False(t, tl.contains(1))
	require.Equal(t, 0, tl.len())
}
