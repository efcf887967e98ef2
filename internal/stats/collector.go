package stats

import (
	"sync"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
)

// Collector accumulates normalized records in arrival order. It is safe for
// concurrent use by the pipeline and the HTTP handlers.
type Collector struct {
	mu      sync.RWMutex
	records []domain.LaunchRecord
	seen    map[string]struct{}
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Add appends records.
func (c *Collector) Add(records ...domain.LaunchRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, records...)
}

// AddEvents appends the record of each event whose ID has not been collected
// yet, so redelivered messages are counted once. Events without an ID are
// always appended. It returns the number of records added.
func (c *Collector) AddEvents(events ...domain.LaunchEvent) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	added := 0
	for i := range events {
		if id := events[i].ID; id != "" {
			if _, dup := c.seen[id]; dup {
				continue
			}
			c.seen[id] = struct{}{}
		}
		c.records = append(c.records, events[i].Record)
		added++
	}
	return added
}

// Snapshot returns a copy of the collected records.
func (c *Collector) Snapshot() []domain.LaunchRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.LaunchRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of collected records.
func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
