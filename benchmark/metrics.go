package benchmark

import (
	"time"
)

// Sample is the outcome of a single workload call
type Sample struct {
	Instance   int           `json:"instance"`
	Iterations uint64        `json:"iterations"`
	Value      uint64        `json:"value"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Report holds the timings of one driver run
type Report struct {
	Mode      Mode          `json:"mode"`
	Instances int           `json:"instances"`
	Wall      time.Duration `json:"wall"` // whole batch, including pool startup and join
	Sum       time.Duration `json:"sum"`  // sum of per-call durations
	Samples   []Sample      `json:"samples"`
}

// newReport builds a report whose Sum always matches its samples.
func newReport(mode Mode, wall time.Duration, samples []Sample) *Report {
	return &Report{
		Mode:      mode,
		Instances: len(samples),
		Wall:      wall,
		Sum:       sumElapsed(samples),
		Samples:   samples,
	}
}

func sumElapsed(samples []Sample) time.Duration {
	var total time.Duration
	for _, s := range samples {
		total += s.Elapsed
	}
	return total
}

// Comparison is the result of a full benchmark invocation
type Comparison struct {
	BenchmarkID string    `json:"benchmark_id"`
	Workload    string    `json:"workload"`
	Loops       int       `json:"loops"`
	NumCPU      int       `json:"num_cpu"`
	Timestamp   time.Time `json:"timestamp"`
	Parallel    *Report   `json:"parallel,omitempty"`
	Serial      *Report   `json:"serial,omitempty"`

	// Set only when both drivers ran
	Difference time.Duration `json:"difference"`
	Speedup    float64       `json:"speedup"`
	Efficiency float64       `json:"efficiency"`
}

// compare fills the difference fields from the two reports.
func (c *Comparison) compare() {
	if c.Parallel == nil || c.Serial == nil {
		return
	}
	c.Difference = c.Serial.Wall - c.Parallel.Wall
	if c.Parallel.Wall > 0 {
		c.Speedup = c.Serial.Wall.Seconds() / c.Parallel.Wall.Seconds()
	}
	cores := min(c.Parallel.Instances, c.NumCPU)
	if cores > 0 {
		c.Efficiency = c.Speedup / float64(cores)
	}
}
