package scqbf_test

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabusearch/scqbf"
)

// workedExample is n=2, S0={1}, S1={2}, A=[[1,2],[0,3]].
const workedExample = `2
1 1
1
2
1 2
3
`

func parse(t *testing.T, text string) *scqbf.Instance {
	t.Helper()
	inst, err := scqbf.Parse(strings.NewReader(text))
	require.NoError(t, err)

	return inst
}

// randomInstanceText writes an instance where set i always covers element
// i+1, plus a few random extras, so the full selection is always feasible.
func randomInstanceText(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	sets := make([][]int, n)
	for i := range sets {
		seen := map[int]bool{i + 1: true}
		sets[i] = []int{i + 1}
		for k := 0; k < 2; k++ {
			u := rng.Intn(n) + 1
			if !seen[u] {
				seen[u] = true
				sets[i] = append(sets[i], u)
			}
		}
	}

	var sb strings.Builder
	fmt.Fprintln(&sb, n)
	for _, s := range sets {
		fmt.Fprintf(&sb, "%d ", len(s))
	}
	sb.WriteByte('\n')
	for _, s := range sets {
		for _, u := range s {
			fmt.Fprintf(&sb, "%d ", u)
		}
		sb.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			fmt.Fprintf(&sb, "%d ", rng.Intn(21)-10)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func stringsReader(s string) io.Reader { return strings.NewReader(s) }
