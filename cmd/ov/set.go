package main

import (
	"fmt"

	"github.com/signadot/ovitem"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/item/pointer"
	"github.com/signadot/ovitem/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a pointer and a json value", cli.ErrUsage)
	}
	p, err := pointer.Parse(args[0], cfg.ptrOpts()...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	val, err := parse.Parse([]byte(args[1]), cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding value: %w", err)
	}
	defer item.Free(val)
	return cfg.eachDoc(cc, args[2:], func(_ string, doc *item.Node) error {
		if len(p) == 0 {
			return cfg.writeDoc(cc.Out, val)
		}
		if err := setAt(doc, p, val.Copy()); err != nil {
			return err
		}
		return cfg.writeDoc(cc.Out, doc)
	})
}

// setAt stores v at p in doc, creating the last array element when p ends
// in "-". Intermediate "-" tokens append null elements.
func setAt(doc *item.Node, p pointer.Pointer, v *item.Node) error {
	parent, err := ovitem.ResolveOrAppend(doc, p.Parent().String())
	if err != nil {
		item.Free(v)
		return err
	}
	last := p.Last()
	switch parent.Type() {
	case item.ObjectType:
		err = parent.Set(last, v)
	case item.ArrayType:
		if last == pointer.Append {
			err = parent.Push(v)
			break
		}
		var i int
		i, err = pointer.Index(last)
		if err == nil {
			err = parent.SetIndex(i, v)
		}
	default:
		err = fmt.Errorf("%w: cannot set %q in %s", item.ErrType, last, parent.Type())
	}
	if err != nil {
		item.Free(v)
		return fmt.Errorf("setting %s: %w", p, err)
	}
	return nil
}
