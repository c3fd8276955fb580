package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"intervalcover/bench"
)

func newBenchCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the benchmark harness and write CSV results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return runBench(cmd, v)
		},
	}
	cmd.Flags().IntSlice("sizes", []int{1000, 10000, 100000, 1000000}, "input sizes to benchmark")
	cmd.Flags().String("out", "", "output CSV path (default: stdout)")
	return cmd
}

func runBench(cmd *cobra.Command, v *viper.Viper) error {
	variant, err := variantFromFlag(v)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path := v.GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("bench: %w", err)
		}
		defer f.Close()
		out = f
	}

	sizes := v.GetIntSlice("sizes")
	if variant == "euler" {
		results := bench.RunEuler(cmd.Context(), sizes)
		return bench.WriteEulerCSV(out, results)
	}
	results := bench.RunSampled(cmd.Context(), sizes)
	return bench.WriteSampledCSV(out, results)
}
