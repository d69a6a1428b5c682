package main

import (
	"github.com/signadot/ovitem/item"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachDoc(cc, args, func(_ string, doc *item.Node) error {
		return item.Dump(cc.Out, doc)
	})
}
