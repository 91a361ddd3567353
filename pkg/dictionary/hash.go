package dictionary

// Hash is a rolling shift-xor hash over the bytes of an already normalized
// word.
func Hash[T ~string | ~[]byte](word T) uint32 {
	var h uint32
	for i := 0; i < len(word); i++ {
		h = (h << 2) ^ uint32(word[i])
	}
	return h
}

// BucketIndex maps a normalized word to a bucket in [0, capacity). Insert,
// grow and lookup all use it.
func BucketIndex[T ~string | ~[]byte](word T, capacity int) int {
	return int(uint64(Hash(word)) % uint64(capacity))
}
