// Package report renders the outcome of a run as text, YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabusearch/tabu"
)

// Formats understood by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Settings echoes the engine configuration of the run.
type Settings struct {
	Tenure          int    `yaml:"tenure" json:"tenure"`
	TimeLimit       string `yaml:"time_limit" json:"time_limit"`
	MaxIterations   int    `yaml:"max_iterations" json:"max_iterations"`
	Strategy        string `yaml:"strategy" json:"strategy"`
	Diversification bool   `yaml:"diversification" json:"diversification"`
	Intensification bool   `yaml:"intensification" json:"intensification"`
	Seed            int64  `yaml:"seed" json:"seed"`
	Schedule        []Step `yaml:"diversify_schedule,omitempty" json:"diversify_schedule,omitempty"`
}

// Step is one diversification threshold.
type Step struct {
	After    int     `yaml:"after" json:"after"`
	Fraction float64 `yaml:"fraction" json:"fraction"`
}

// Report is the outcome of one run. Objective is the value of the original
// problem; Cost is what the engine minimized (Objective negated when
// Maximize is set).
type Report struct {
	Instance string   `yaml:"instance" json:"instance"`
	Method   string   `yaml:"method" json:"method"`
	RunID    string   `yaml:"run_id" json:"run_id"`
	Settings Settings `yaml:"settings" json:"settings"`

	Maximize         bool    `yaml:"maximize" json:"maximize"`
	Objective        float64 `yaml:"objective" json:"objective"`
	Cost             float64 `yaml:"cost" json:"cost"`
	ConstructionCost float64 `yaml:"construction_cost" json:"construction_cost"`
	Size             int     `yaml:"size" json:"size"`
	Elements         []int   `yaml:"elements,flow" json:"elements"`

	Iterations       int     `yaml:"iterations" json:"iterations"`
	Improvements     int     `yaml:"improvements" json:"improvements"`
	Intensifications int     `yaml:"intensifications" json:"intensifications"`
	Diversifications int     `yaml:"diversifications" json:"diversifications"`
	ElapsedSeconds   float64 `yaml:"elapsed_seconds" json:"elapsed_seconds"`
	StopReason       string  `yaml:"stop_reason" json:"stop_reason"`
}

// New builds a report. Elements are listed in ascending order.
func New(instance, method string, maximize bool, opts tabu.Options, res tabu.Result[int]) Report {
	r := Report{
		Instance: instance,
		Method:   method,
		RunID:    res.RunID,
		Settings: Settings{
			Tenure:          opts.Tenure,
			TimeLimit:       opts.TimeLimit.String(),
			MaxIterations:   opts.MaxIterations,
			Strategy:        opts.Strategy.String(),
			Diversification: opts.Diversification,
			Intensification: opts.Intensification,
			Seed:            opts.Seed,
		},
		Maximize:         maximize,
		Objective:        res.Cost,
		Cost:             res.Cost,
		ConstructionCost: res.ConstructionCost,
		Iterations:       res.Iterations,
		Improvements:     res.Improvements,
		Intensifications: res.Intensifications,
		Diversifications: res.Diversifications,
		ElapsedSeconds:   res.Elapsed.Seconds(),
		StopReason:       string(res.StopReason),
	}
	if maximize {
		r.Objective = -res.Cost
	}
	if opts.Diversification {
		for _, s := range opts.DiversifySchedule {
			r.Settings.Schedule = append(r.Settings.Schedule, Step{After: s.After, Fraction: s.Fraction})
		}
	}
	if res.Best != nil {
		r.Elements = res.Best.Elements()
		slices.Sort(r.Elements)
		r.Size = len(r.Elements)
	}

	return r
}

// Write encodes r in the given format.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return r.writeText(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func (r Report) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"instance=%s method=%s\n"+
			"run=%s stop=%s it=%d t=%.2f\n"+
			"improvements=%d intensifications=%d diversifications=%d\n"+
			"objective=%g size=%d elements=%v\n",
		r.Instance, r.Method,
		r.RunID, r.StopReason, r.Iterations, r.ElapsedSeconds,
		r.Improvements, r.Intensifications, r.Diversifications,
		r.Objective, r.Size, r.Elements,
	)
	if err != nil {
		return fmt.Errorf("report: text: %w", err)
	}

	return nil
}
