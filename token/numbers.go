package token

import (
	"fmt"
	"math"
	"strconv"
)

// Number scans a number at the start of d and parses it. The scan never
// looks past len(d). The number must end in a digit, so "1." and "1e" are
// rejected rather than read as 1.
func Number(d []byte) (float64, int, error) {
	n := numberSpan(d)
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: no digits", ErrNumber)
	}
	if !asciiDigit(d[n-1]) {
		return 0, 0, fmt.Errorf("%w: %q does not end in a digit", ErrNumber, d[:n])
	}
	f, err := strconv.ParseFloat(string(d[:n]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNumber, err)
	}
	return f, n, nil
}

// numberSpan returns the length of the longest prefix of d shaped like
// -?digits(.digits*)?([eE][+-]?digits*)?
func numberSpan(d []byte) int {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0
	}
	i += digits
	if i < len(d) && d[i] == '.' {
		i++
		i += asciiDigits(d[i:])
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		i += asciiDigits(d[i:])
	}
	return i
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// maxExactInt bounds the integers a float64 represents exactly.
const maxExactInt = 1 << 53

// AppendNumber appends the JSON text of f. Integral values within the
// exactly representable range are written as integers, other finite
// values in the shortest 'g' form. NaN and infinities have no JSON form
// and are written as null.
func AppendNumber(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return append(dst, "null"...)
	case f == math.Trunc(f) && math.Abs(f) < maxExactInt:
		return strconv.AppendInt(dst, int64(f), 10)
	default:
		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	}
}

// FormatNumber returns the JSON text of f as written by AppendNumber.
func FormatNumber(f float64) string {
	var scratch [32]byte
	return string(AppendNumber(scratch[:0], f))
}
