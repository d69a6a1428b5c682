package token

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// QuotedSpan returns the length of the quoted string starting at d[0],
// both quotes included. A backslash escapes the byte following it.
func QuotedSpan(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, fmt.Errorf("%w: no string at start", ErrUnterminated)
	}
	escaped := false
	for i := 1; i < len(d); i++ {
		switch c := d[i]; {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w string", ErrUnterminated)
}

// Unquote decodes the quoted string q, as delimited by QuotedSpan.
func Unquote(q []byte) (string, error) {
	n := len(q)
	if n < 2 || q[0] != '"' || q[n-1] != '"' {
		return "", fmt.Errorf("%w string", ErrUnterminated)
	}
	body := q[1 : n-1]
	plain := true
	for _, c := range body {
		if c == '\\' || c < 0x20 {
			plain = false
			break
		}
	}
	if plain {
		return string(body), nil
	}
	res := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < 0x20 {
			return "", fmt.Errorf("%w %#02x at offset %d", ErrUnicodeControl, c, i+1)
		}
		if c != '\\' {
			res = append(res, c)
			continue
		}
		i++
		if i == len(body) {
			return "", fmt.Errorf("%w: trailing backslash", ErrBadEscape)
		}
		switch body[i] {
		case '"', '\\', '/':
			res = append(res, body[i])
		case 'b':
			res = append(res, '\b')
		case 'f':
			res = append(res, '\f')
		case 'n':
			res = append(res, '\n')
		case 'r':
			res = append(res, '\r')
		case 't':
			res = append(res, '\t')
		case 'u':
			r, sz, err := unicodeEscape(body[i-1:])
			if err != nil {
				return "", err
			}
			res = utf8.AppendRune(res, r)
			i += sz - 2
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, body[i])
		}
	}
	return string(res), nil
}

// unicodeEscape decodes a \uXXXX escape at the start of d, combining a
// following low surrogate escape. It returns the rune and the number of
// bytes consumed.
func unicodeEscape(d []byte) (rune, int, error) {
	r1, ok := hex4(d)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadUnicode, d[:min(len(d), 6)])
	}
	if !utf16.IsSurrogate(r1) {
		return r1, 6, nil
	}
	if r2, ok := hex4(d[6:]); ok {
		if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
			return r, 12, nil
		}
	}
	return utf8.RuneError, 6, nil
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 6 || d[0] != '\\' || d[1] != 'u' {
		return 0, false
	}
	var r rune
	for _, c := range d[2:6] {
		switch {
		case '0' <= c && c <= '9':
			c -= '0'
		case 'a' <= c && c <= 'f':
			c -= 'a' - 10
		case 'A' <= c && c <= 'F':
			c -= 'A' - 10
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}

const hexDigits = "0123456789abcdef"

// AppendQuote appends s as a JSON string, quotes included.
func AppendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = AppendEscaped(dst, s)
	return append(dst, '"')
}

// AppendEscaped appends the escaped body of s without quotes.
func AppendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			dst = append(dst, '\\', c)
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
				continue
			}
			dst = append(dst, c)
		}
	}
	return dst
}

// EscapedLen returns len(AppendEscaped(nil, s)).
func EscapedLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\', '\b', '\f', '\n', '\r', '\t':
			n += 2
		default:
			if c < 0x20 {
				n += 6
				continue
			}
			n++
		}
	}
	return n
}

// Quote returns s as a JSON string.
func Quote(s string) string {
	return string(AppendQuote(make([]byte, 0, EscapedLen(s)+2), s))
}
