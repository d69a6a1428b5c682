package item

import "errors"

var (
	ErrInvalid     = errors.New("invalid node")
	ErrType        = errors.New("wrong node type")
	ErrLockTimeout = errors.New("lock timeout")
	ErrNotFound    = errors.New("not found")
	ErrOwned       = errors.New("node already has a parent")
	ErrCycle       = errors.New("node would contain itself")
	ErrIndex       = errors.New("negative index")
)
