package checksum

const (
	// FNV1aOffsetBasis is the initial state of the 64-bit FNV-1a hash.
	FNV1aOffsetBasis uint64 = 0xCBF29CE484222325

	fnv1aPrime uint64 = 0x100000001B3
)

// HashFNV1a folds data into the 64-bit FNV-1a state at *hash. Seed the
// state with FNV1aOffsetBasis before the first call; further calls
// continue the hash over additional data.
func HashFNV1a(data []byte, hash *uint64) {
	h := *hash
	for _, b := range data {
		h ^= uint64(b)
		h *= fnv1aPrime
	}
	*hash = h
}
