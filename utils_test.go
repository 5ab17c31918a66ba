package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want uint32
	}{
		{"one", 1, 1},
		{"two", 2, 2},
		{"three", 3, 4},
		{"power of 2", 16, 16},
		{"just above power of 2", 17, 32},
		{"hundred", 100, 128},
		{"max accepted capacity", maxCapacity, maxCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextPowerOf2(tt.v))
		})
	}
}
