package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/launch-data-etl/internal/adapter/csvstore"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "import <chronology.csv>",
		Short: "Normalize scraped chronology rows and persist them",
		Long: "Reads date;vehicle;site;remarks rows, decodes their irregular dates, " +
			"classifies every launch and writes the persisted table.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd.Context(), args[0], orDefault(output, a.cfg.DataPath), force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "persisted table path (default $DATA_PATH)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing persisted table")
	return cmd
}

func (a *app) runImport(ctx context.Context, input, output string, force bool) error {
	if !force {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", output)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := csvstore.ReadRaw(f)
	if err != nil {
		return err
	}

	bn, err := a.batchNormalizer(true)
	if err != nil {
		return err
	}
	records, err := bn.NormalizeAll(ctx, rows, true)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", input, err)
	}

	// Write next to the target and rename so a failed import never leaves a
	// truncated table behind.
	tmp, err := os.CreateTemp(filepath.Dir(output), filepath.Base(output)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if err := csvstore.Write(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		return err
	}

	a.logger.Info("launches imported", "input", input, "output", output, "records", len(records))
	return nil
}
