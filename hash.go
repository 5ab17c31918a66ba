package dict

type HashFunc func(key string) uint64

const djb2Seed = 5381

// HashDJB2 is the default hash: h = h*33 + b over the raw key bytes.
// It only needs to spread keys well enough for linear probing.
func HashDJB2(key string) uint64 {
	h := uint64(djb2Seed)
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i])
	}

	return h
}
