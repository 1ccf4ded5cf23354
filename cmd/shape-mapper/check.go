package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shape-mapper/internal/mapping"
)

var errCheckFailed = errors.New("rule file has errors")

func newCheckCmd(_ *globalFlags) *cobra.Command {
	var rules string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report problems in a rule file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rules == "" {
				return errRulesRequired
			}

			rf, err := mapping.LoadFile(rules)
			if err != nil {
				return err
			}

			diags := mapping.Validate(rf, mapping.DefaultRegistry())

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d.String())
			}

			if diags.HasErrors() {
				return errCheckFailed
			}

			fmt.Fprintf(out, "ok: %d rules\n", len(rf.Rules))

			return nil
		},
	}

	addRulesFlag(cmd.Flags(), &rules)

	return cmd
}
