package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/libdiff"
	"github.com/signadot/ovitem/parse"
	"github.com/signadot/ovitem/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop != "" {
		return diffLoop(cfg, cc)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getOne(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	defer item.Free(y1)
	y2, err := getOne(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	defer item.Free(y2)
	differs, err := diffInputs(cfg, cc, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getOne(cfg *MainConfig, cc *cli.Context, path string) (*item.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	parseFunc := parse.Parse
	if cfg.Y {
		parseFunc = parse.ParseYAML
	}
	y, err := parseFunc(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return y, nil
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	last := item.Null()
	defer func() { item.Free(last) }()
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	for i := 0; i != cfg.LoopLim; i++ {
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		next, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
		differs, err := diffInputs(cfg, cc, last, next)
		if err != nil {
			item.Free(next)
			return err
		}
		if differs {
			theLog.Info("difference found", "at", time.Now().Format(time.RFC3339Nano), "iteration", i)
		}
		item.Free(last)
		last = next
		<-ticker.C
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *item.Node) (bool, error) {
	if cfg.Merge {
		if item.Equal(a, b) {
			return false, nil
		}
		mp, err := patch.CreateMerge(a, b, cfg.parseOpts()...)
		if err != nil {
			return false, err
		}
		defer item.Free(mp)
		return true, cfg.writeDoc(cc.Out, mp)
	}
	d, err := libdiff.Diff(a, b, cfg.style())
	if err != nil {
		return false, err
	}
	if d == "" {
		return false, nil
	}
	if _, err := io.WriteString(cc.Out, d); err != nil {
		return false, err
	}
	return true, nil
}
