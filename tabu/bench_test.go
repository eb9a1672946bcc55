package tabu_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tabusearch/scqbf"
	"github.com/katalvlaran/tabusearch/tabu"
)

func benchmarkSolve(b *testing.B, n int, opts ...tabu.Option) {
	inst, err := scqbf.Generate(scqbf.GenerateOptions{N: n, Density: 0.05, MaxCoef: 10}, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	eval, err := scqbf.NewInverse(inst)
	if err != nil {
		b.Fatal(err)
	}
	eng, err := tabu.New[int](eval, append([]tabu.Option{tabu.WithMaxIterations(50)}, opts...)...)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eng.Solve(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_First_N50(b *testing.B) { benchmarkSolve(b, 50) }
func BenchmarkSolve_Best_N50(b *testing.B)  { benchmarkSolve(b, 50, tabu.WithBestImproving()) }
func BenchmarkSolve_Int_N50(b *testing.B)   { benchmarkSolve(b, 50, tabu.WithIntensification(true)) }
