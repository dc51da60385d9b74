package benchmark

import (
	"encoding/binary"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkload(t *testing.T) {
	tests := []struct {
		typ     WorkloadType
		want    string
		wantErr error
	}{
		{"", "Count", nil},
		{WorkloadCount, "Count", nil},
		{WorkloadKeccak, "Keccak", nil},
		{"fibonacci", "", ErrUnknownWorkload},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			w, err := CreateWorkload(WorkloadConfig{Type: tt.typ})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Name())
			assert.NotEmpty(t, w.GetDescription())
		})
	}
}

func TestCountWorkload_Compute(t *testing.T) {
	w := NewCountWorkload(WorkloadConfig{Type: WorkloadCount})

	for _, n := range []int{0, 1, 10, 16} {
		s := w.Compute(n)
		assert.Equal(t, uint64(1)<<n, s.Iterations)
		assert.Equal(t, uint64(1)<<n, s.Value, "counter must reach 2^%d", n)
		assert.GreaterOrEqual(t, int64(s.Elapsed), int64(0))
	}
}

func TestKeccakWorkload_Compute(t *testing.T) {
	w := NewKeccakWorkload(WorkloadConfig{Type: WorkloadKeccak})

	one := w.Compute(0)
	digest := crypto.Keccak256(keccakSeed)
	assert.Equal(t, uint64(1), one.Iterations)
	assert.Equal(t, binary.BigEndian.Uint64(digest[:8]), one.Value)

	two := w.Compute(1)
	digest = crypto.Keccak256(digest)
	assert.Equal(t, binary.BigEndian.Uint64(digest[:8]), two.Value)
	assert.GreaterOrEqual(t, int64(two.Elapsed), int64(0))

	// identical input, identical chain
	assert.Equal(t, w.Compute(8).Value, w.Compute(8).Value)
}
