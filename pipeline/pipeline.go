// Package pipeline turns raw input lines into records and maintains
// the count-by aggregation that feeds live table snapshots.
package pipeline

import (
	"encoding/json"
	"sort"
	"strings"

	"gitlab.com/tinyland/lab/streamtab/data"
)

// ParseLine converts one input line into a record. Lines holding a
// JSON object become structured records with one field per top-level
// key; anything else passes through as a raw-only record.
func ParseLine(line string) *data.Record {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return &data.Record{Raw: line, Fields: map[string]data.Value{}}
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return &data.Record{Raw: line, Fields: map[string]data.Value{}}
	}

	fields := make(map[string]data.Value, len(obj))
	for k, v := range obj {
		fields[k] = data.FromJSON(v)
	}
	return &data.Record{Raw: line, Fields: fields}
}

// CountAggregator counts records grouped by the values of a fixed set
// of key fields. Each Snapshot is a complete replacement table: rows
// sorted by descending count, ties broken by key order.
type CountAggregator struct {
	keys   []string
	counts map[string]int64
	groups map[string]map[string]string
}

// NewCountAggregator groups by the given field names.
func NewCountAggregator(keys []string) *CountAggregator {
	return &CountAggregator{
		keys:   keys,
		counts: map[string]int64{},
		groups: map[string]map[string]string{},
	}
}

// Push folds one record into the running counts.
func (c *CountAggregator) Push(record *data.Record) {
	keyVals := make(map[string]string, len(c.keys))
	parts := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		v := "None"
		if value, ok := record.Fields[k]; ok {
			v = value.String()
		}
		keyVals[k] = v
		parts = append(parts, v)
	}
	id := strings.Join(parts, "\x00")
	c.counts[id]++
	c.groups[id] = keyVals
}

// Snapshot materializes the current counts as an aggregate.
func (c *CountAggregator) Snapshot() *data.Aggregate {
	ids := make([]string, 0, len(c.counts))
	for id := range c.counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if c.counts[ids[i]] != c.counts[ids[j]] {
			return c.counts[ids[i]] > c.counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	rows := make([]data.AggregateRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, data.AggregateRow{
			Keys:  c.groups[id],
			Value: data.Int(c.counts[id]),
		})
	}
	return data.NewAggregate(c.keys, "_count", rows)
}
