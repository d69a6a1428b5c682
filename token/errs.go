package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated   = errors.New("unterminated")
	ErrDocBalance     = errors.New("imbalanced document")
	ErrLiteral        = errors.New("bad literal")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrUnicodeControl = errors.New("unicode control")
	ErrNumber         = errors.New("number")
	ErrUnexpected     = errors.New("unexpected byte")
)

// UnexpectedErr describes an unexpected byte c at offset off.
func UnexpectedErr(c byte, off int) error {
	return fmt.Errorf("%w %q at offset %d", ErrUnexpected, c, off)
}
