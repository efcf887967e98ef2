package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// RawLaunch is one chronology row as delivered by the scraper or reloaded
// from the persisted table.
type RawLaunch struct {
	Date    string `json:"date"`
	Vehicle string `json:"vehicle"`
	Site    string `json:"site"`
	Remarks string `json:"remarks"`
}

// LaunchRecord is the classified form of a launch. It is fully derived by
// [Normalizer.Normalize] and passed around by value.
type LaunchRecord struct {
	Year    int     `json:"year"`
	Site    string  `json:"site"`
	Country Country `json:"country"`
	Vehicle string  `json:"vehicle"`
	Family  Family  `json:"family"`
	Remarks string  `json:"remarks,omitempty"`
	Success bool    `json:"success"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// LaunchEvent is a normalized record on its way to the sink topic.
type LaunchEvent struct {
	ID          string
	Record      LaunchRecord
	ProcessedAt time.Time
}

// LaunchID produces a deterministic ID from the trimmed raw fields.
// Reprocessing the same row yields the same ID.
func LaunchID(raw RawLaunch) string {
	input := strings.Join([]string{
		strings.TrimSpace(raw.Date),
		strings.TrimSpace(raw.Vehicle),
		strings.TrimSpace(raw.Site),
		strings.TrimSpace(raw.Remarks),
	}, "|")
	hash := sha256.Sum256([]byte(input))
	return "launch-" + hex.EncodeToString(hash[:8])
}
