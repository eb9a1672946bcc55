package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/tabusearch/tabu"
)

// Method presets.
const (
	MethodStd     = "std"      // tenure 20, first-improving
	MethodStdT2   = "std+t2"   // tenure 5
	MethodStdBest = "std+best" // best-improving
	MethodStdDiv  = "std+div"  // diversification
	MethodStdInt  = "std+int"  // intensification
)

// shortTenure is the tenure of the std+t2 preset.
const shortTenure = 5

var presets = map[string]func(*Config){
	MethodStd:     func(*Config) {},
	MethodStdT2:   func(c *Config) { c.Tenure = shortTenure },
	MethodStdBest: func(c *Config) { c.Strategy = tabu.BestImproving.String() },
	MethodStdDiv:  func(c *Config) { c.Diversification = true },
	MethodStdInt:  func(c *Config) { c.Intensification = true },
}

// Preset returns the default configuration adjusted for method.
func Preset(method string) (Config, error) {
	apply, ok := presets[method]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown method %q", ErrInvalid, method)
	}
	c := Default()
	c.Method = method
	apply(&c)

	return c, nil
}

// PresetNames lists the known methods in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
