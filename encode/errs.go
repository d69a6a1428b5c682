package encode

import "errors"

var (
	ErrOverflow = errors.New("encode: output exceeds buffer")
	ErrSize     = errors.New("encode: output size changed between passes")
)
