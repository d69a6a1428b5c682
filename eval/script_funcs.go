package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/signadot/ovitem/item"
)

func exprOpts(doc *item.Node) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return doc.Pointer(), nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			ptr := params[0].(string)
			res, err := item.Resolve(doc.Root(), ptr)
			if err != nil {
				return nil, err
			}
			return res.ToAnyInts(), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
