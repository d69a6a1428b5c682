package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/ovitem/token"
)

var (
	ErrParse    = errors.New("parse error")
	ErrEmpty    = fmt.Errorf("%w: no value", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing data", ErrParse)
	ErrDepth    = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrKey      = fmt.Errorf("%w: object key must be a string", ErrParse)
	ErrColon    = fmt.Errorf("%w: expected ':'", ErrParse)
	ErrComma    = fmt.Errorf("%w: expected ',' or closing bracket", ErrParse)
	ErrInsert   = fmt.Errorf("%w: cannot insert value", ErrParse)
)

// Error is a decoding failure at a byte offset of the input.
type Error struct {
	Offset int
	Err    error

	doc []byte
}

func (e *Error) Error() string {
	pos := token.NewPosDoc(e.doc).Pos(e.Offset)
	return fmt.Sprintf("%s: %v", pos, e.Err)
}

// Unwrap gives access to ErrParse and to the underlying cause.
func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func (p *parser) errAt(off int, err error) error {
	return &Error{Offset: off, Err: err, doc: p.d}
}
