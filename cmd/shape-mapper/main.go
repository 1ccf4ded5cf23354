// Package main provides the CLI entrypoint for shape-mapper.
//
// shape-mapper maps JSON documents between two shapes using a YAML rule file:
//   - map: apply the rules left to right (or right to left with --reverse)
//   - check: report problems in a rule file without running it
//   - inspect: dump the compiled rules
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	logLevel string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:          "shape-mapper",
		Short:        "Map JSON documents between two shapes with bidirectional rules",
		SilenceUsage: true,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newMapCmd(&g),
		newCheckCmd(&g),
		newInspectCmd(&g),
	)

	return root
}

// logger builds a text logger on the command's error stream.
func (g *globalFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", g.logLevel, err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

func addRulesFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "rules", "r", "", "path to the YAML rule file")
}
