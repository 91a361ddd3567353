package dictionary

// overloaded reports whether the table must grow before the next insert.
func (t *Table) overloaded() bool {
	return float64(len(t.entries))/float64(len(t.buckets)) > MaxLoadFactor
}

// allocBuckets obtains an empty bucket array of n heads.
func (t *Table) allocBuckets(n int) ([]int32, error) {
	if n <= 0 || n > t.maxBuckets {
		return nil, ErrAllocation
	}
	buckets := make([]int32, n)
	for i := range buckets {
		buckets[i] = nilHandle
	}
	return buckets, nil
}

// grow doubles the bucket count and relinks every entry into the bucket its
// word hashes to under the new capacity. The new array is obtained before any
// chain is touched, so a failure leaves the table exactly as it was.
func (t *Table) grow() error {
	size := len(t.buckets) * 2
	buckets, err := t.allocBuckets(size)
	if err != nil {
		t.logger.Debug("table growth refused", "from", len(t.buckets), "to", size, "words", len(t.entries))
		return err
	}

	for _, head := range t.buckets {
		for h := head; h != nilHandle; {
			e := &t.entries[h]
			next := e.next
			idx := BucketIndex(e.word, size)
			e.next = buckets[idx]
			buckets[idx] = h
			h = next
		}
	}

	t.logger.Debug("table grown", "from", len(t.buckets), "to", size, "words", len(t.entries))
	t.buckets = buckets
	t.grows++
	return nil
}
