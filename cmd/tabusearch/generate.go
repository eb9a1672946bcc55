package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tabusearch/scqbf"
)

func newGenerateCmd() *cobra.Command {
	var (
		opts   scqbf.GenerateOptions
		seed   int64
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random SCQBF instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inst, err := scqbf.Generate(opts, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			out, closeOut, err := openOutput(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			defer closeOut()

			return scqbf.Write(out, inst)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&opts.N, "n", "n", 25, "domain size")
	fs.Float64Var(&opts.Density, "density", 0.1, "probability that a set covers each other element")
	fs.IntVar(&opts.MaxCoef, "max-coef", 10, "coefficients are drawn from [-max-coef, max-coef]")
	fs.Int64Var(&seed, "seed", 1, "RNG seed")
	fs.StringVarP(&output, "output", "o", "", "output file, stdout if empty")

	return cmd
}
