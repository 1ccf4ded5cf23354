package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"shape-mapper/internal/mapping"
	"shape-mapper/internal/plan"
)

// ruleView is the printable form of a compiled rule.
type ruleView struct {
	Index       int
	Left        string
	Right       string
	Literal     any
	Transform   string
	Format      *mapping.FormatSpec
	Description string
}

type planView struct {
	LeftToRight string
	RightToLeft string
	Rules       []ruleView
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newInspectCmd(g *globalFlags) *cobra.Command {
	var rules string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the compiled rules of a rule file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := g.logger(cmd)
			if err != nil {
				return err
			}

			rf, p, err := loadPlan(rules, log)
			if err != nil {
				return err
			}

			dumper.Fdump(cmd.OutOrStdout(), describe(rf, p))

			return nil
		},
	}

	addRulesFlag(cmd.Flags(), &rules)

	return cmd
}

func describe(rf *mapping.RuleFile, p *plan.Plan) planView {
	view := planView{
		LeftToRight: p.Order(mapping.LeftToRight).String(),
		RightToLeft: p.Order(mapping.RightToLeft).String(),
	}

	for i, r := range p.Rules() {
		rv := ruleView{
			Index:       r.Index(),
			Transform:   rf.Rules[i].Transform,
			Description: rf.Rules[i].Description,
		}

		if left, ok := r.Left(); ok {
			rv.Left = left.String()
		}

		if right, ok := r.Right(); ok {
			rv.Right = right.String()
		}

		if lit, ok := r.Literal(); ok {
			rv.Literal = lit
		}

		if f, ok := r.Format(); ok {
			rv.Format = &f
		}

		view.Rules = append(view.Rules, rv)
	}

	return view
}
