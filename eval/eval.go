package eval

import (
	"errors"
	"fmt"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/ovitem/debug"
	"github.com/signadot/ovitem/item"
)

type Env map[string]any

// DocVar names the variable holding the whole document.
const DocVar = "doc"

var ErrEval = errors.New("eval")

// Eval evaluates expression with doc in scope and returns the result as a
// new tree. Entries of env override the document's members.
func Eval(doc *item.Node, expression string, env Env) (*item.Node, error) {
	if debug.Eval() {
		debug.Logf("eval %q at %q with env ", expression, doc.Pointer())
		debug.LogAny(env)
		debug.Logf("\n")
	}
	res, err := run(doc, expression, env)
	if err != nil {
		return nil, err
	}
	out, err := item.FromAny(res, item.WithLockTimeout(doc.LockTimeout()))
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, expression, err)
	}
	return out, nil
}

func run(doc *item.Node, expression string, env Env) (any, error) {
	full := docEnv(doc)
	maps.Copy(full, env)
	program, err := expr.Compile(expression, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, expression, err)
	}
	res, err := vm.Run(program, full)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, expression, err)
	}
	return res, nil
}

func docEnv(doc *item.Node) Env {
	v := doc.ToAnyInts()
	env := Env{DocVar: v}
	if m, ok := v.(map[string]any); ok {
		for k, x := range m {
			if _, taken := env[k]; !taken {
				env[k] = x
			}
		}
	}
	return env
}
