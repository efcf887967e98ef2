package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/couchcryptid/launch-data-etl/internal/adapter/csvstore"
	"github.com/couchcryptid/launch-data-etl/internal/report"
	"github.com/couchcryptid/launch-data-etl/internal/stats"
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	var data string
	var langs []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report launch statistics from the persisted table",
		Long: "Reloads the persisted table, re-classifies every launch with the current " +
			"tables and prints the report once per language.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(langs) == 0 {
				langs = a.cfg.ReportLanguages
			}
			return a.runReport(cmd.Context(), cmd.OutOrStdout(), orDefault(data, a.cfg.DataPath), langs, asJSON)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "persisted table path (default $DATA_PATH)")
	cmd.Flags().StringSliceVarP(&langs, "lang", "l", nil, "report languages (default $REPORT_LANGUAGES)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report model as JSON")
	return cmd
}

func (a *app) runReport(ctx context.Context, w io.Writer, data string, langs []string, asJSON bool) error {
	translators := make([]report.Translator, 0, len(langs))
	for _, lang := range langs {
		tr, err := report.NewTranslator(strings.TrimSpace(lang))
		if err != nil {
			return err
		}
		translators = append(translators, tr)
	}

	f, err := os.Open(data)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := csvstore.ReadPersisted(f)
	if err != nil {
		return err
	}

	bn, err := a.batchNormalizer(false)
	if err != nil {
		return err
	}
	records, err := bn.NormalizeAll(ctx, rows, false)
	if err != nil {
		return fmt.Errorf("reload %s: %w", data, err)
	}

	years := stats.DefaultYearRange()
	for _, tr := range translators {
		rep := report.Build(records, years, tr)
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, renderReport(rep)); err != nil {
			return err
		}
	}
	return nil
}
