package main

import (
	"context"
	"os"

	"github.com/couchcryptid/launch-data-etl/internal/adapter/csvstore"
	"github.com/couchcryptid/launch-data-etl/internal/adapter/kafka"
	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/spf13/cobra"
)

func newPublishCmd(a *app) *cobra.Command {
	var persisted bool

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Send launch rows to the source topic of the streaming service",
		Long: "Publishes scraped chronology rows, or with --persisted the rows of a " +
			"persisted table, as raw launch messages on $KAFKA_SOURCE_TOPIC.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPublish(cmd.Context(), args[0], persisted)
		},
	}

	cmd.Flags().BoolVar(&persisted, "persisted", false, "the file is a persisted table; rows carry exact dates")
	return cmd
}

func (a *app) runPublish(ctx context.Context, path string, persisted bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	read, mode := csvstore.ReadRaw, domain.DateModeFuzzy
	if persisted {
		read, mode = csvstore.ReadPersisted, domain.DateModeExact
	}
	rows, err := read(f)
	if err != nil {
		return err
	}

	pub := kafka.NewPublisher(a.cfg, a.logger)
	defer pub.Close()

	return pub.Publish(ctx, rows, mode)
}
