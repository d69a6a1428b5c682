package token

// IsSpace reports whether c is JSON whitespace: space, tab, CR or LF.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// SkipSpace returns the number of leading whitespace bytes of d.
func SkipSpace(d []byte) int {
	i := 0
	for i < len(d) && IsSpace(d[i]) {
		i++
	}
	return i
}

// AllSpace reports whether d consists only of whitespace.
func AllSpace(d []byte) bool {
	return SkipSpace(d) == len(d)
}
