package benchmark

import (
	"time"
)

// CountWorkload increments a counter once per iteration.
type CountWorkload struct {
	config WorkloadConfig
}

// NewCountWorkload creates the default busy-loop workload
func NewCountWorkload(cfg WorkloadConfig) *CountWorkload {
	return &CountWorkload{config: cfg}
}

func (w *CountWorkload) Name() string {
	return "Count"
}

func (w *CountWorkload) GetDescription() string {
	return "Busy loop adding one per iteration, 2^n iterations per call"
}

// Compute counts up to 2^n and returns the final counter with the elapsed time.
func (w *CountWorkload) Compute(n int) Sample {
	total := iterations(n)

	start := time.Now()
	var res uint64
	for i := uint64(0); i < total; i++ {
		res++
	}
	elapsed := time.Since(start)

	return Sample{
		Iterations: total,
		Value:      res,
		Elapsed:    elapsed,
	}
}
