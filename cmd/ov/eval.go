package main

import (
	"fmt"

	"github.com/signadot/ovitem/eval"
	"github.com/signadot/ovitem/item"

	"github.com/scott-cotton/cli"
)

func evalMain(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expand {
		return cfg.eachDoc(cc, args, func(_ string, doc *item.Node) error {
			res, err := eval.Expand(doc.Copy(), cfg.Env)
			if err != nil {
				return err
			}
			defer item.Free(res)
			return cfg.writeDoc(cc.Out, res)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	expression := args[0]
	return cfg.eachDoc(cc, args[1:], func(_ string, doc *item.Node) error {
		res, err := eval.Eval(doc, expression, cfg.Env)
		if err != nil {
			return err
		}
		defer item.Free(res)
		return cfg.writeDoc(cc.Out, res)
	})
}
