package scqbf

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/tabusearch/matrix"
)

// GenerateOptions shapes a random instance.
type GenerateOptions struct {
	N       int     // domain size, > 0
	Density float64 // probability that set i covers element u≠i, in [0,1]
	MaxCoef int     // coefficients are integers in [−MaxCoef, MaxCoef]
}

// Generate returns a random instance. Set i always covers element i, so
// selecting every set is feasible.
func Generate(opts GenerateOptions, rng *rand.Rand) (*Instance, error) {
	if opts.N <= 0 || opts.Density < 0 || opts.Density > 1 || opts.MaxCoef < 0 {
		return nil, fmt.Errorf("scqbf: generate: %w: %+v", errOutOfRange, opts)
	}

	n := opts.N
	inst := &Instance{N: n, Sets: make([][]int, n)}
	for i := range inst.Sets {
		for u := 0; u < n; u++ {
			if u == i || rng.Float64() < opts.Density {
				inst.Sets[i] = append(inst.Sets[i], u)
			}
		}
	}

	values := make([]float64, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			values = append(values, float64(rng.Intn(2*opts.MaxCoef+1)-opts.MaxCoef))
		}
	}
	var err error
	if inst.A, err = matrix.NewSquare(n); err != nil {
		return nil, fmt.Errorf("scqbf: %w", err)
	}
	if err = matrix.FillUpper(inst.A, values); err != nil {
		return nil, fmt.Errorf("scqbf: %w", err)
	}

	return inst, nil
}

// Write encodes inst in the text format read by Parse.
func Write(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, inst.N)

	for i, set := range inst.Sets {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(len(set)))
	}
	bw.WriteByte('\n')

	for _, set := range inst.Sets {
		for k, u := range set {
			if k > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(u + 1))
		}
		bw.WriteByte('\n')
	}

	for i := 0; i < inst.N; i++ {
		for j := i; j < inst.N; j++ {
			a, err := inst.A.At(i, j)
			if err != nil {
				return fmt.Errorf("scqbf: write instance: %w", err)
			}
			if j > i {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
