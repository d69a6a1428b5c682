package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/ovitem/encode"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/parse"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// decodeAll decodes every document in d. JSON documents follow one
// another directly, yaml documents are separated by "---" lines.
func (cfg *MainConfig) decodeAll(d []byte) ([]*item.Node, error) {
	var res []*item.Node
	fail := func(i int, err error) ([]*item.Node, error) {
		for _, doc := range res {
			item.Free(doc)
		}
		return nil, fmt.Errorf("error decoding document %d: %w", i, err)
	}
	if cfg.Y {
		for i, doc := range bytes.Split(d, []byte("\n---\n")) {
			if len(bytes.TrimSpace(doc)) == 0 && i > 0 {
				continue
			}
			y, err := parse.ParseYAML(doc, cfg.parseOpts()...)
			if err != nil {
				return fail(i, err)
			}
			res = append(res, y)
		}
		return res, nil
	}
	off := 0
	for i := 0; i == 0 || len(bytes.TrimSpace(d[off:])) > 0; i++ {
		n, y, err := parse.Decode(d[off:], cfg.parseOpts()...)
		if err != nil {
			return fail(i, err)
		}
		off += n
		res = append(res, y)
	}
	return res, nil
}

func (cfg *MainConfig) getObjFile(cc *cli.Context, path string) ([]*item.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return cfg.decodeAll(d)
}

// eachDoc calls f on every document of every file, stdin if there are
// none. Documents are freed after f returns.
func (cfg *MainConfig) eachDoc(cc *cli.Context, files []string, f func(file string, doc *item.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := cfg.getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, doc := range docs {
			err := f(file, doc)
			item.Free(doc)
			if err != nil {
				for _, rest := range docs[i+1:] {
					item.Free(rest)
				}
				return fmt.Errorf("error processing %s: %w", file, err)
			}
		}
	}
	return nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, doc *item.Node) error {
	if err := encode.EncodeTo(doc, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}
