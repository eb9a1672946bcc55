package metrics

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabusearch/tabu"
)

func TestRecorder_Observe(t *testing.T) {
	r := NewRecorder(prometheus.Labels{"method": "std"})

	r.Observe(tabu.Event{Kind: tabu.EventConstructed, Cost: 5, BestCost: 5, Size: 3, TabuSize: 40})
	r.Observe(tabu.Event{Kind: tabu.EventImproved, Iteration: 1, Cost: 2, BestCost: 2, Size: 4, TabuSize: 40})
	r.Observe(tabu.Event{Kind: tabu.EventIteration, Iteration: 1, Cost: 2, BestCost: 2, Size: 4, TabuSize: 40})
	r.Observe(tabu.Event{Kind: tabu.EventDiversified, Iteration: 2, Cost: 9, BestCost: 2, Size: 6, TabuSize: 40})
	r.Observe(tabu.Event{Kind: tabu.EventIteration, Iteration: 2, Cost: 9, BestCost: 2, Size: 6, TabuSize: 40,
		Elapsed: 1500 * time.Millisecond})

	require.Equal(t, 2.0, testutil.ToFloat64(r.iterations))
	require.Equal(t, 1.0, testutil.ToFloat64(r.improvements))
	require.Equal(t, 1.0, testutil.ToFloat64(r.diversifications))
	require.Equal(t, 0.0, testutil.ToFloat64(r.intensifications))
	require.Equal(t, 2.0, testutil.ToFloat64(r.bestCost))
	require.Equal(t, 9.0, testutil.ToFloat64(r.currentCost))
	require.Equal(t, 6.0, testutil.ToFloat64(r.solutionSize))
	require.Equal(t, 40.0, testutil.ToFloat64(r.tabuSize))
	require.Equal(t, 1.5, testutil.ToFloat64(r.elapsed))
	require.Equal(t, 0.0, testutil.ToFloat64(r.finished))

	r.Observe(tabu.Event{Kind: tabu.EventFinished, Cost: math.NaN(), BestCost: 2})
	require.Equal(t, 1.0, testutil.ToFloat64(r.finished))
	require.Equal(t, 9.0, testutil.ToFloat64(r.currentCost), "NaN is not recorded")

	n, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	require.Equal(t, 10, n)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder(nil)
	r.Observe(tabu.Event{Kind: tabu.EventIteration, Cost: -3, BestCost: -7})

	path := filepath.Join(t.TempDir(), "tabu.prom")
	require.NoError(t, r.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	require.Contains(t, text, "tabu_iterations_total 1")
	require.Contains(t, text, "tabu_best_cost -7")
	require.Contains(t, text, "# TYPE tabu_current_cost gauge")
}
