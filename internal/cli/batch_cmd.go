package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/sehat/internal/cli/formatter"
	"github.com/alexanderramin/sehat/internal/importer"
	"github.com/alexanderramin/sehat/internal/triage"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func newBatchCmd(app *App) *cobra.Command {
	var dumpMetrics bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run a YAML or JSON case file through the classifier",
		Long: `Classify every case in FILE and compare against its expectations.
The file's language applies unless --lang is given. Exits non-zero when any
case fails or errors.`,
		Example: `  sehat batch testdata/ladder.yaml
  sehat batch cases.json --lang hi --metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := importer.Load(args[0], app.Classifier.Symptoms())
			if err != nil {
				return err
			}

			lang := app.Language.Get()
			if suite.Language != "" && !cmd.Flags().Changed("lang") {
				lang = suite.Language
			}

			runID := uuid.New().String()
			results := app.Classifier.RunCases(suite.Cases, lang)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatCaseResults(suite.Name, lang, results))
			fmt.Fprintln(out, formatter.Dim("run "+runID))

			if dumpMetrics && app.Gatherer != nil {
				fmt.Fprintln(out)
				if err := writeMetrics(out, app.Gatherer); err != nil {
					return fmt.Errorf("writing metrics: %w", err)
				}
			}

			sum := triage.Summarize(results)
			if bad := sum.Failed + sum.Errored; bad > 0 {
				return fmt.Errorf("%d of %d case(s) did not pass", bad, sum.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dumpMetrics, "metrics", app.DumpMetrics, "Print Prometheus metrics after the run")

	return cmd
}

// writeMetrics writes every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
