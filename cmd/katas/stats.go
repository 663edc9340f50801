package main

import (
	"fmt"
	"io"
	"sort"

	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/gokatas/katas/internal/metrics"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [metrics-file]",
		Short: "Summarize a session metrics file written with --metrics-out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mfs, err := metrics.ReadFile(args[0])
			if err != nil {
				return err
			}
			return printStats(cmd.OutOrStdout(), mfs)
		},
	}
}

// printStats writes one line per option and per rule outcome.
func printStats(w io.Writer, mfs map[string]*dto.MetricFamily) error {
	sessions := metrics.SumBy(mfs[metrics.SelectionsTotal], "session")
	for _, id := range sortedKeys(sessions) {
		if _, err := fmt.Fprintf(w, "session %s\n", id); err != nil {
			return err
		}
	}

	selections := metrics.SumBy(mfs[metrics.SelectionsTotal], "option")
	for _, opt := range sortedKeys(selections) {
		if _, err := fmt.Fprintf(w, "selections %s: %g\n", opt, selections[opt]); err != nil {
			return err
		}
	}

	perRule := make(map[string][2]float64)
	for _, m := range mfs[metrics.RuleEvaluationsTotal].GetMetric() {
		var rule, outcome string
		for _, lp := range m.GetLabel() {
			switch lp.GetName() {
			case "rule":
				rule = lp.GetValue()
			case "outcome":
				outcome = lp.GetValue()
			}
		}
		counts := perRule[rule]
		if outcome == "true" {
			counts[0] += m.GetCounter().GetValue()
		} else {
			counts[1] += m.GetCounter().GetValue()
		}
		perRule[rule] = counts
	}
	rules := make([]string, 0, len(perRule))
	for r := range perRule {
		rules = append(rules, r)
	}
	sort.Strings(rules)
	for _, r := range rules {
		c := perRule[r]
		if _, err := fmt.Fprintf(w, "%s: true=%g false=%g\n", r, c[0], c[1]); err != nil {
			return err
		}
	}

	minutes := metrics.SumBy(mfs[metrics.CookingMinutes], "quantity")
	for _, q := range sortedKeys(minutes) {
		if _, err := fmt.Fprintf(w, "last %s minutes: %g\n", q, minutes[q]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
