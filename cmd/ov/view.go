package main

import (
	"github.com/signadot/ovitem/item"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachDoc(cc, args, func(_ string, doc *item.Node) error {
		return cfg.writeDoc(cc.Out, doc)
	})
}
