package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/launch-data-etl/internal/config"
	"github.com/couchcryptid/launch-data-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// dateModeHeader mirrors pipeline.DateModeHeader.
const dateModeHeader = "date_mode"

// Publisher feeds raw launch rows into the source topic.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a producer for the configured source topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSourceTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish writes rows as JSON payloads keyed by launch ID. mode is sent in
// the date_mode header so the consumer picks the matching date path.
func (p *Publisher) Publish(ctx context.Context, rows []domain.RawLaunch, mode domain.DateMode) error {
	if len(rows) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(rows))
	for i, row := range rows {
		msg, err := rawToMessage(row, mode)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d raw launches: %w", len(msgs), err)
	}
	p.logger.Info("raw launches published", "count", len(msgs), "topic", p.writer.Topic, "date_mode", mode)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func rawToMessage(row domain.RawLaunch, mode domain.DateMode) (kafkago.Message, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize raw launch: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(domain.LaunchID(row)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: dateModeHeader, Value: []byte(mode)},
		},
	}, nil
}
