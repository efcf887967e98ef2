//go:build integration

package integration_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const kafkaImage = "confluentinc/confluent-local:7.5.0"

// startKafka runs a single-node broker for the test and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, kafkaImage, tckafka.WithClusterID("launch-etl-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = container.Terminate(stopCtx)
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic through the cluster controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// chronologyRows is a slice of the first years of the chronology as the
// scraper delivers it.
func chronologyRows() []domain.RawLaunch {
	return []domain.RawLaunch{
		{Date: "4 October 1957", Vehicle: "Sputnik 8K71PS", Site: "Ba LC-1/5", Remarks: ""},
		{Date: "3 November 1957", Vehicle: "Sputnik 8K71PS", Site: "Ba LC-1/5", Remarks: ""},
		{Date: "6 December 1957", Vehicle: "Vanguard", Site: "CC LC-18A", Remarks: "Launch failure"},
		{Date: "1 February 1958", Vehicle: "Jupiter-C", Site: "CC LC-26A", Remarks: ""},
		{Date: "17 March 1958", Vehicle: "Vanguard", Site: "CC LC-18A", Remarks: ""},
		{Date: "27 April 1958", Vehicle: "Sputnik 8A91", Site: "Ba LC-1/5", Remarks: "Launch failure"},
		{Date: "2 January 1959", Vehicle: "Vostok 8K72", Site: "Ba LC-1/5", Remarks: "Launch failure"},
		{Date: "17 February 1959", Vehicle: "Vanguard", Site: "CC LC-18A", Remarks: ""},
	}
}
