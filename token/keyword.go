package token

import "fmt"

type Keyword int

const (
	NullKeyword Keyword = iota
	TrueKeyword
	FalseKeyword
)

var keywords = [...]string{
	NullKeyword:  "null",
	TrueKeyword:  "true",
	FalseKeyword: "false",
}

func (k Keyword) String() string {
	return keywords[k]
}

// MatchKeyword matches one of null, true or false at the start of d and
// returns it with its length. A partial or misspelled keyword is an error.
func MatchKeyword(d []byte) (Keyword, int, error) {
	if len(d) == 0 {
		return 0, 0, fmt.Errorf("%w: empty", ErrLiteral)
	}
	var k Keyword
	switch d[0] {
	case 'n':
		k = NullKeyword
	case 't':
		k = TrueKeyword
	case 'f':
		k = FalseKeyword
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrLiteral, d[0])
	}
	kw := keywords[k]
	if len(d) < len(kw) || string(d[:len(kw)]) != kw {
		return 0, 0, fmt.Errorf("%w: expected %s", ErrLiteral, kw)
	}
	return k, len(kw), nil
}
