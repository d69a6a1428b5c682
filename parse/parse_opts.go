package parse

import (
	"time"

	"github.com/signadot/ovitem/item"
)

// DefaultMaxDepth bounds container nesting unless MaxDepth says otherwise.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
	itemOpts []item.Option
}

type ParseOption func(*parseOpts)

// LockTimeout sets the lock timeout of every node the decoder creates.
func LockTimeout(d time.Duration) ParseOption {
	return func(o *parseOpts) {
		o.itemOpts = append(o.itemOpts, item.WithLockTimeout(d))
	}
}

// MaxDepth limits container nesting to n levels. n <= 0 restores the
// default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
