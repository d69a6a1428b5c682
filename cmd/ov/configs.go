package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/ovitem/encode"
	"github.com/signadot/ovitem/format"
	"github.com/signadot/ovitem/item/pointer"
	"github.com/signadot/ovitem/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Sort     bool `cli:"name=k aliases=sort desc='write object keys in sorted order'"`
	Y        bool `cli:"name=y aliases=yaml desc='read yaml input'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting depth of input'"`

	Style       *format.Style
	LockTimeout time.Duration

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) styleFunc(_ *cli.Context, v string) (any, error) {
	s, err := format.ParseStyle(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Style = &s
	return s.Name, nil
}

func (cfg *MainConfig) lockFunc(_ *cli.Context, v string) (any, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.LockTimeout = d
	return d, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	if cfg.LockTimeout > 0 {
		res = append(res, parse.LockTimeout(cfg.LockTimeout))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Style != nil {
		res = append(res, encode.WithStyle(*cfg.Style))
	}
	if cfg.Sort {
		res = append(res, encode.Collate(format.Lexical))
	}
	if cfg.Color {
		res = append(res, encode.WithColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) style() format.Style {
	if cfg.Style != nil {
		return *cfg.Style
	}
	return format.Default()
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Backslash bool `cli:"name=b desc='pointer tokens use backslash escapes'"`

	Get *cli.Command
}

func (cfg *GetConfig) ptrOpts() []pointer.ParseOption {
	if cfg.Backslash {
		return []pointer.ParseOption{pointer.BackslashEscape()}
	}
	return nil
}

type SetConfig struct {
	*MainConfig
	Backslash bool `cli:"name=b desc='pointer tokens use backslash escapes'"`

	Set *cli.Command
}

func (cfg *SetConfig) ptrOpts() []pointer.ParseOption {
	if cfg.Backslash {
		return []pointer.ParseOption{pointer.BackslashEscape()}
	}
	return nil
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Expand bool `cli:"name=x desc='expand .[expr] strings in the input instead of evaluating an expression'"`

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Loop      string `cli:"name=loop desc='command to produce objects to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int  `cli:"name=loopLim desc='max number of times to loop'"`
	Merge     bool `cli:"name=m desc='output a merge patch instead of a line diff'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m desc='patch is a merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}
