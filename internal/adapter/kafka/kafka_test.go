package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("key-1"),
		Value:     []byte(`{"date":"4 October 1957"}`),
		Topic:     "raw-launch-records",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "date_mode", Value: []byte("exact")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("key-1"), raw.Key)
	assert.JSONEq(t, `{"date":"4 October 1957"}`, string(raw.Value))
	assert.Equal(t, "raw-launch-records", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "exact", raw.Headers["date_mode"])
	assert.Nil(t, raw.Commit)
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	event := domain.LaunchEvent{
		ID: "launch-0011223344556677",
		Record: domain.LaunchRecord{
			Year:    1957,
			Site:    "Ba LC-1/5",
			Country: domain.CountryUSSRRussia,
			Vehicle: "Sputnik 8K71PS",
			Family:  domain.FamilyR7,
			Success: true,
		},
		ProcessedAt: now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("launch-0011223344556677"), msg.Key)
	assert.JSONEq(t, `{"year":1957,"site":"Ba LC-1/5","country":"USSR/Russia","vehicle":"Sputnik 8K71PS","family":"R-7","success":true}`, string(msg.Value))
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "country", msg.Headers[0].Key)
	assert.Equal(t, []byte("USSR/Russia"), msg.Headers[0].Value)
	assert.Equal(t, "family", msg.Headers[1].Key)
	assert.Equal(t, []byte("R-7"), msg.Headers[1].Value)
	assert.Equal(t, "processed_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)
}

func TestRawToMessage(t *testing.T) {
	row := domain.RawLaunch{Date: "1957", Vehicle: "Sputnik 8K71PS", Site: "Ba LC-1/5", Remarks: ""}

	msg, err := rawToMessage(row, domain.DateModeExact)
	require.NoError(t, err)

	assert.Equal(t, []byte(domain.LaunchID(row)), msg.Key)
	assert.JSONEq(t, `{"date":"1957","vehicle":"Sputnik 8K71PS","site":"Ba LC-1/5","remarks":""}`, string(msg.Value))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "date_mode", msg.Headers[0].Key)
	assert.Equal(t, []byte("exact"), msg.Headers[0].Value)

	// The consumer side reads the header back unchanged.
	raw := mapMessageToRawEvent(msg)
	assert.Equal(t, "exact", raw.Headers["date_mode"])
}
