package main

import (
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"intervalcover/covering"
	"intervalcover/intervalio"
)

func newSolveCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <file.bin>",
		Short: "Load intervals from a binary file and print the minimum cover",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return runSolve(cmd, v, args[0])
		},
	}
	cmd.Flags().Bool("debug", false, "enable precondition and invariant checks")
	return cmd
}

func runSolve(cmd *cobra.Command, v *viper.Viper, path string) error {
	log := ctxzap.Extract(cmd.Context())

	l, r, err := intervalio.ReadFromBin(path)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	variant, err := variantFromFlag(v)
	if err != nil {
		return err
	}

	accL := func(i int) int64 { return l[i] }
	accR := func(i int) int64 { return r[i] }
	s := covering.New(len(l), accL, accR)
	s.Debug = v.GetBool("debug")

	log.Info("solving", zap.Int("n", len(l)), zap.String("variant", variant))

	if variant == "euler" {
		err = s.RunEulerTour()
	} else {
		err = s.Run()
	}
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	selected := s.SelectedIndices()
	indices := selected.ToSlice()
	log.Info("solved", zap.Int("num_selected", len(indices)))
	for _, i := range indices {
		fmt.Fprintln(cmd.OutOrStdout(), i)
	}
	return nil
}
