package dictionary

// MaxWordLength is the longest word, in bytes, the table accepts.
// It matches the longest word in the standard English word lists (45).
const MaxWordLength = 45

// Normalize returns the ASCII lower-cased form of word as stored by the
// table. Bytes outside A-Z pass through untouched.
func Normalize(word string) (string, error) {
	if len(word) > MaxWordLength {
		return "", ErrWordTooLong
	}
	var buf [MaxWordLength]byte
	return string(fold(buf[:0], word)), nil
}

// fold appends the lower-cased bytes of word to dst. Callers bound word to
// MaxWordLength so a stack buffer of that size never reallocates.
func fold(dst []byte, word string) []byte {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}
