// Package stats answers grouped-count queries over normalized launch
// records. Every query is read-only; records are never modified.
package stats
