package eval

import (
	"fmt"
	"maps"

	"github.com/signadot/ovitem/debug"
	"github.com/signadot/ovitem/item"
)

// GetRaw extracts the expression from a .[expression] reference.
// It returns "" if v is not a reference.
// Example: GetRaw(".[a + 1]") returns "a + 1"
func GetRaw(v string) string {
	if len(v) < 3 || v[:2] != ".[" || v[len(v)-1] != ']' {
		return ""
	}
	return v[2 : len(v)-1]
}

// Expand replaces every string value of the form .[expression] in the
// tree rooted at doc with the result of the expression, evaluated with
// the string's node as the current position. Expressions see the
// document as it was before expansion started. It returns the root,
// which is a new node only when doc itself was a reference.
func Expand(doc *item.Node, env Env) (*item.Node, error) {
	base := docEnv(doc)
	maps.Copy(base, env)
	repl, err := expand(doc, base)
	if err != nil {
		return nil, err
	}
	if repl != nil {
		item.Free(doc)
		return repl, nil
	}
	return doc, nil
}

// expand returns the replacement for n, or nil to keep n.
func expand(n *item.Node, env Env) (*item.Node, error) {
	switch n.Type() {
	case item.StringType:
		s, _ := n.StringValue()
		raw := GetRaw(s)
		if raw == "" {
			return nil, nil
		}
		if debug.Eval() {
			debug.Logf("expand %q at %q\n", raw, n.Pointer())
		}
		res, err := run(n, raw, env)
		if err != nil {
			return nil, err
		}
		out, err := item.FromAny(res, item.WithLockTimeout(n.LockTimeout()))
		if err != nil {
			return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, raw, err)
		}
		return out, nil
	case item.ArrayType:
		for i, e := range n.Elems() {
			if e == nil {
				continue
			}
			repl, err := expand(e, env)
			if err != nil {
				return nil, err
			}
			if repl == nil {
				continue
			}
			if err := n.SetIndex(i, repl); err != nil {
				item.Free(repl)
				return nil, err
			}
		}
	case item.ObjectType:
		var ferr error
		err := n.ForEach(func(key string, val *item.Node) bool {
			repl, err := expand(val, env)
			if err != nil {
				ferr = err
				return false
			}
			if repl == nil {
				return true
			}
			if err := n.Set(key, repl); err != nil {
				item.Free(repl)
				ferr = err
				return false
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		if ferr != nil {
			return nil, ferr
		}
	}
	return nil, nil
}
