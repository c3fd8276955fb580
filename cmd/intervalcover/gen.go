package main

import (
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"intervalcover/intervalgen"
	"intervalcover/intervalio"
)

func newGenCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <file.bin>",
		Short: "Write a synthetic monotone interval chain to a binary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return runGen(cmd, v, args[0])
		},
	}
	cmd.Flags().Int("n", 10000, "number of intervals to generate")
	cmd.Flags().Uint64("seed", 42, "generator seed")
	return cmd
}

func runGen(cmd *cobra.Command, v *viper.Viper, path string) error {
	log := ctxzap.Extract(cmd.Context())

	n := v.GetInt("n")
	p := intervalgen.DefaultParams()
	p.Seed = v.GetUint64("seed")

	l, r, err := intervalgen.Generate(n, p)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	if err := intervalio.WriteToBin(path, l, r); err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	log.Info("generated chain", zap.Int("n", n), zap.String("path", path))
	return nil
}
