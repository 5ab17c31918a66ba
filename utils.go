package dict

import (
	"math/bits"
)

// Largest initial capacity accepted by Config.Validate.
const maxCapacity = 1 << 30

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}
