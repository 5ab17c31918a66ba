package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashDJB2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{
			name:  "Empty key is the seed",
			input: "",
			want:  5381,
		},
		{
			name:  "Single byte",
			input: "a",
			want:  5381*33 + 'a',
		},
		{
			name:  "Two bytes",
			input: "ab",
			want:  (5381*33+'a')*33 + 'b',
		},
		{
			name:  "High byte is unsigned",
			input: "\xff",
			want:  5381*33 + 0xFF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HashDJB2(tt.input))
		})
	}
}

func TestHashDJB2_Overflow(t *testing.T) {
	key := "a fairly long texture path that overflows 64 bits/player.png"

	h := uint64(5381)
	for _, b := range []byte(key) {
		h = h*33 + uint64(b)
	}

	require.Equal(t, h, HashDJB2(key))
}
