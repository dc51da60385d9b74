package benchmark

import (
	"encoding/binary"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
)

// keccakSeed is the first input of every hash chain so that all calls do identical work.
var keccakSeed = []byte("cpu-bench")

// KeccakWorkload chains Keccak-256 digests, feeding each output into the next round.
type KeccakWorkload struct {
	config WorkloadConfig
}

// NewKeccakWorkload creates a hash-chain workload
func NewKeccakWorkload(cfg WorkloadConfig) *KeccakWorkload {
	return &KeccakWorkload{config: cfg}
}

func (w *KeccakWorkload) Name() string {
	return "Keccak"
}

func (w *KeccakWorkload) GetDescription() string {
	return "Keccak-256 hash chain, 2^n rounds per call"
}

// Compute hashes the seed 2^n times. The value is the first 8 bytes of the final digest.
func (w *KeccakWorkload) Compute(n int) Sample {
	total := iterations(n)

	start := time.Now()
	digest := keccakSeed
	for i := uint64(0); i < total; i++ {
		digest = crypto.Keccak256(digest)
	}
	elapsed := time.Since(start)

	return Sample{
		Iterations: total,
		Value:      binary.BigEndian.Uint64(digest[:8]),
		Elapsed:    elapsed,
	}
}
