// Package metrics exposes Tabu Search progress as Prometheus metrics.
//
// A Recorder is a tabu.Observer: pass it with tabu.WithObserver and it keeps
// counters and gauges up to date on a private registry. Nothing is served
// over the network; WriteTextfile dumps the registry in the text exposition
// format (node_exporter textfile collector layout).
package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tabusearch/tabu"
)

const namespace = "tabu"

// Recorder turns engine events into metrics.
type Recorder struct {
	reg *prometheus.Registry

	iterations       prometheus.Counter
	improvements     prometheus.Counter
	intensifications prometheus.Counter
	diversifications prometheus.Counter

	bestCost     prometheus.Gauge
	currentCost  prometheus.Gauge
	solutionSize prometheus.Gauge
	tabuSize     prometheus.Gauge
	elapsed      prometheus.Gauge
	finished     prometheus.Gauge
}

var _ tabu.Observer = (*Recorder)(nil)

// NewRecorder registers the metrics on a fresh registry. labels are attached
// to every series (e.g. instance and method); nil is fine.
func NewRecorder(labels prometheus.Labels) *Recorder {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: name, Help: help, ConstLabels: labels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: name, Help: help, ConstLabels: labels,
		})
	}

	r := &Recorder{
		reg:              prometheus.NewRegistry(),
		iterations:       counter("iterations_total", "Completed main-loop iterations."),
		improvements:     counter("improvements_total", "Times the best solution was replaced."),
		intensifications: counter("intensifications_total", "Successful intensification moves."),
		diversifications: counter("diversifications_total", "Diversification restarts."),
		bestCost:         gauge("best_cost", "Cost of the best solution (engine sign, minimized)."),
		currentCost:      gauge("current_cost", "Cost of the working solution."),
		solutionSize:     gauge("solution_size", "Elements in the working solution."),
		tabuSize:         gauge("tabu_list_size", "Entries in the tabu list."),
		elapsed:          gauge("elapsed_seconds", "Wall-clock time since the run started."),
		finished:         gauge("finished", "1 once the run has returned."),
	}
	r.reg.MustRegister(
		r.iterations, r.improvements, r.intensifications, r.diversifications,
		r.bestCost, r.currentCost, r.solutionSize, r.tabuSize, r.elapsed, r.finished,
	)

	return r
}

// Registry returns the private registry, e.g. for promhttp or tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe implements tabu.Observer.
func (r *Recorder) Observe(ev tabu.Event) {
	switch ev.Kind {
	case tabu.EventIteration:
		r.iterations.Inc()
	case tabu.EventImproved:
		r.improvements.Inc()
	case tabu.EventIntensified:
		r.intensifications.Inc()
	case tabu.EventDiversified:
		r.diversifications.Inc()
	case tabu.EventFinished:
		r.finished.Set(1)
	}

	setFinite(r.bestCost, ev.BestCost)
	setFinite(r.currentCost, ev.Cost)
	r.solutionSize.Set(float64(ev.Size))
	r.tabuSize.Set(float64(ev.TabuSize))
	r.elapsed.Set(ev.Elapsed.Seconds())
}

// WriteTextfile atomically writes the current metric values to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

func setFinite(g prometheus.Gauge, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	g.Set(v)
}
