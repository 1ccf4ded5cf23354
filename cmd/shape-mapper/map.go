package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shape-mapper/internal/common"
	"shape-mapper/internal/conversion"
	"shape-mapper/internal/mapping"
	"shape-mapper/internal/plan"
	"shape-mapper/internal/schema"
)

type mapFlags struct {
	rules       string
	reverse     bool
	overrides   string
	leftSchema  string
	rightSchema string
	compact     bool
}

func newMapCmd(g *globalFlags) *cobra.Command {
	var f mapFlags

	cmd := &cobra.Command{
		Use:   "map [input.json]",
		Short: "Map a JSON document with a rule file",
		Long: "Reads a JSON document from the given file (or stdin), applies the rule file " +
			"left to right (or right to left with --reverse) and writes the result to stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, g, &f, args)
		},
	}

	fs := cmd.Flags()
	addRulesFlag(fs, &f.rules)
	fs.BoolVar(&f.reverse, "reverse", false, "map right to left")
	fs.StringVar(&f.overrides, "overrides", "", "JSON document whose values win at rule target paths")
	fs.StringVar(&f.leftSchema, "left-schema", "", "JSON Schema (JSON or YAML) for left documents")
	fs.StringVar(&f.rightSchema, "right-schema", "", "JSON Schema (JSON or YAML) for right documents")
	fs.BoolVar(&f.compact, "compact", false, "write compact JSON")

	return cmd
}

func runMap(cmd *cobra.Command, g *globalFlags, f *mapFlags, args []string) error {
	log, err := g.logger(cmd)
	if err != nil {
		return err
	}

	_, p, err := loadPlan(f.rules, log)
	if err != nil {
		return err
	}

	opts := []conversion.Option{
		conversion.WithExecOptions(plan.WithLogger(log)),
	}

	if f.leftSchema != "" {
		s, err := schema.LoadFile(f.leftSchema)
		if err != nil {
			return err
		}

		opts = append(opts, conversion.WithLeft(s))
	}

	if f.rightSchema != "" {
		s, err := schema.LoadFile(f.rightSchema)
		if err != nil {
			return err
		}

		opts = append(opts, conversion.WithRight(s))
	}

	var input io.Reader = cmd.InOrStdin()

	if name, ok := common.First(args); ok {
		file, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()

		input = file
	}

	source, err := decodeJSON(input)
	if err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	var overrides any

	if f.overrides != "" {
		file, err := os.Open(f.overrides)
		if err != nil {
			return fmt.Errorf("failed to open overrides: %w", err)
		}
		defer file.Close()

		overrides, err = decodeJSON(file)
		if err != nil {
			return fmt.Errorf("failed to decode overrides: %w", err)
		}
	}

	dir := mapping.LeftToRight
	if f.reverse {
		dir = mapping.RightToLeft
	}

	result, err := conversion.New(p, opts...).Convert(source, overrides, dir)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !f.compact {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(result)
}

func decodeJSON(r io.Reader) (any, error) {
	var v any

	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}
