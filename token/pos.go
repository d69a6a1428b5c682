package token

import (
	"fmt"
	"sort"
)

// PosDoc maps byte offsets of a document to line and column numbers.
type PosDoc struct {
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 0 based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

// Pos is a position in a document.
type Pos struct {
	I int
	D *PosDoc
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: d}
}

func (p *Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	l, c := p.D.LineCol(p.I)
	return fmt.Sprintf("%d:%d", l+1, c+1)
}
