package utils

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ContainsNumbers checks if a string contains any ASCII digits
func ContainsNumbers(s string) bool {
	for i := 0; i < len(s); i++ {
		if IsDigit(s[i]) {
			return true
		}
	}
	return false
}

// IsWord reports whether s is a checkable word: ASCII letters with
// apostrophes anywhere but the first position.
func IsWord(s string) bool {
	if len(s) == 0 || !IsLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsLetter(s[i]) && s[i] != '\'' {
			return false
		}
	}
	return true
}

// IsValidInput checks if interactive input should be looked up at all.
// Rejects empty input, digits and anything IsWord rejects.
func IsValidInput(s string) bool {
	if ContainsNumbers(s) {
		return false
	}
	return IsWord(s)
}
