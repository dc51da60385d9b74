package benchmark

import (
	"errors"
	"fmt"
)

// Workload defines the interface for the CPU-bound routines being timed
type Workload interface {
	// Name returns the human-readable name of this workload
	Name() string

	// Compute runs 2^n iterations of the workload and reports how long it took.
	// Implementations must not share mutable state between calls.
	Compute(n int) Sample

	// GetDescription returns a detailed description of the workload
	GetDescription() string
}

// WorkloadType represents available workload types
type WorkloadType string

const (
	WorkloadCount  WorkloadType = "count"
	WorkloadKeccak WorkloadType = "keccak"
)

// MaxLoops bounds the loop exponent so that 2^n fits in a uint64 counter.
const MaxLoops = 63

// ErrUnknownWorkload is returned for a workload type that is not registered.
var ErrUnknownWorkload = errors.New("unknown workload")

// WorkloadConfig contains configuration specific to workloads
type WorkloadConfig struct {
	Type WorkloadType
}

// CreateWorkload creates a workload instance based on the type
func CreateWorkload(cfg WorkloadConfig) (Workload, error) {
	switch cfg.Type {
	case WorkloadKeccak:
		return NewKeccakWorkload(cfg), nil
	case WorkloadCount, "":
		return NewCountWorkload(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkload, cfg.Type)
	}
}

// iterations returns 2^n as the loop bound for a workload call.
func iterations(n int) uint64 {
	return uint64(1) << uint(n)
}
