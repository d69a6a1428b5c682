package main

import (
	"errors"
	"fmt"

	"github.com/signadot/ovitem"
	"github.com/signadot/ovitem/item"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a pointer", cli.ErrUsage)
	}
	ptr := args[0]
	return cfg.eachDoc(cc, args[1:], func(file string, doc *item.Node) error {
		res, err := ovitem.Resolve(doc, ptr, cfg.ptrOpts()...)
		if errors.Is(err, item.ErrNotFound) {
			// absent values print nothing
			theLog.Debug("not found", "file", file, "pointer", ptr)
			return nil
		}
		if err != nil {
			return err
		}
		return cfg.writeDoc(cc.Out, res)
	})
}
