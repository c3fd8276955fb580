// Command intervalcover exposes the covering package over three
// subcommands: solve, gen, and bench. Global flags are bound through a
// single *viper.Viper bound against each subcommand's flag set at run
// time.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"intervalcover/logging"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "intervalcover",
		Short: "Compute minimum interval covers, serially or in parallel",
	}

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", logging.LogFormatConsole, "log output format (json, console)")
	root.PersistentFlags().String("variant", "sampled", "parallel variant: sampled or euler")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(root.PersistentFlags()); err != nil {
			return err
		}

		ctx, err := logging.Init(cmd.Context(),
			logging.WithLogLevel(v.GetString("log-level")),
			logging.WithLogFormat(v.GetString("log-format")),
		)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}

	root.AddCommand(
		newSolveCommand(v),
		newGenCommand(v),
		newBenchCommand(v),
	)
	return root
}

func variantFromFlag(v *viper.Viper) (string, error) {
	switch variant := v.GetString("variant"); variant {
	case "sampled", "euler":
		return variant, nil
	default:
		return "", fmt.Errorf("unknown --variant %q (want sampled or euler)", variant)
	}
}
