package benchmark

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// History defines the storage of past comparisons so runs on different
// machines or settings can be looked at side by side
type History interface {
	// Append stores a comparison keyed by its timestamp
	Append(cmp *Comparison) error

	// List returns at most limit comparisons, newest first.
	// A limit <= 0 returns every stored comparison.
	List(limit int) ([]*Comparison, error)

	// Close properly shuts down the store and releases resources
	Close() error
}

// HistoryConfig holds configuration for opening a history store
type HistoryConfig struct {
	Path     string
	ReadOnly bool
}

// Common history errors
var (
	ErrHistoryDisabled = errors.New("history database path not set")
	ErrHistoryClosed   = errors.New("history database is closed")
)

// historyPrefix namespaces comparison records inside the store
var historyPrefix = []byte("cmp/")

// historyKey orders records by timestamp; the benchmark id breaks ties.
func historyKey(cmp *Comparison) []byte {
	key := make([]byte, 0, len(historyPrefix)+8+len(cmp.BenchmarkID)+1)
	key = append(key, historyPrefix...)
	key = binary.BigEndian.AppendUint64(key, uint64(cmp.Timestamp.UnixNano()))
	key = append(key, '/')
	key = append(key, cmp.BenchmarkID...)
	return key
}

// historyUpperBound is the first key past every comparison record.
func historyUpperBound() []byte {
	bound := append([]byte{}, historyPrefix...)
	bound[len(bound)-1]++
	return bound
}

// FormatComparison renders a stored comparison as a single summary line
func FormatComparison(cmp *Comparison) string {
	var b strings.Builder
	b.WriteString(cmp.Timestamp.Format(time.RFC3339))
	if cmp.BenchmarkID != "" {
		b.WriteString(" [" + cmp.BenchmarkID + "]")
	}
	fmt.Fprintf(&b, " workload=%s loops=%d cpus=%d", cmp.Workload, cmp.Loops, cmp.NumCPU)
	if cmp.Parallel != nil {
		fmt.Fprintf(&b, " parallel=%ss", formatSeconds(cmp.Parallel.Wall))
		fmt.Fprintf(&b, " instances=%d", cmp.Parallel.Instances)
	}
	if cmp.Serial != nil {
		fmt.Fprintf(&b, " serial=%ss", formatSeconds(cmp.Serial.Wall))
		if cmp.Parallel == nil {
			fmt.Fprintf(&b, " instances=%d", cmp.Serial.Instances)
		}
	}
	if cmp.Parallel != nil && cmp.Serial != nil {
		fmt.Fprintf(&b, " speedup=%.2fx", cmp.Speedup)
	}
	return b.String()
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
