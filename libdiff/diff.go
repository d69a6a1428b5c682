package libdiff

import (
	"strings"

	"github.com/signadot/ovitem/encode"
	"github.com/signadot/ovitem/format"
	"github.com/signadot/ovitem/item"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

var opPrefix = [...]string{
	Equal:  " ",
	Insert: "+",
	Delete: "-",
}

func (o Op) String() string {
	return opPrefix[o]
}

// Line is one line of a diff, without its line terminator.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Format renders lines with a one character prefix per line.
func Format(lines []Line) string {
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln.Op.String())
		b.WriteString(ln.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Diff encodes from and to in style s with keys in lexical order and
// diffs the results. It returns "" when the documents are equal.
func Diff(from, to *item.Node, s format.Style) (string, error) {
	if !s.Indents() {
		s = format.Pretty()
	}
	s = s.WithCollate(format.Lexical)
	a, err := encode.EncodeStyle(from, s)
	if err != nil {
		return "", err
	}
	b, err := encode.EncodeStyle(to, s)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}
	return Format(Lines(a+"\n", b+"\n")), nil
}
