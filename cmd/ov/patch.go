package main

import (
	"fmt"

	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/parse"
	"github.com/signadot/ovitem/patch"

	"github.com/scott-cotton/cli"
)

func patchMain(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	defer item.Free(p)
	return cfg.eachDoc(cc, args[1:], func(file string, doc *item.Node) error {
		var res *item.Node
		if cfg.Merge {
			res, err = patch.Merge(doc, p, cfg.parseOpts()...)
		} else {
			res, err = patch.ApplyNode(doc, p, cfg.parseOpts()...)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		defer item.Free(res)
		return cfg.writeDoc(cc.Out, res)
	})
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*item.Node, error) {
	var (
		d   []byte
		err error
	)
	if cfg.String {
		d = []byte(arg)
	} else {
		d, err = readArg(cc, arg)
		if err != nil {
			return nil, err
		}
	}
	p, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return p, nil
}
