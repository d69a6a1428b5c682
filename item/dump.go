package item

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Dump writes a human readable trace of n to w. It is meant for
// diagnostics and is not a serialization format.
func Dump(w io.Writer, n *Node) error {
	return dump(w, n, 0)
}

func dump(w io.Writer, n *Node, depth int) error {
	pad := strings.Repeat("  ", depth)
	if n == nil {
		_, err := fmt.Fprintf(w, "<hole>\n")
		return err
	}
	v, err := n.View()
	if err != nil {
		_, werr := fmt.Fprintf(w, "<%v>\n", err)
		return werr
	}
	switch v.Type {
	case NumberType:
		_, err = fmt.Fprintf(w, "%s %s\n", v.Type, strconv.FormatFloat(v.Number, 'g', -1, 64))
		return err
	case StringType:
		_, err = fmt.Fprintf(w, "%s %q\n", v.Type, v.String)
		return err
	case ArrayType:
		if _, err := fmt.Fprintf(w, "%s (%d)\n", v.Type, len(v.Elems)); err != nil {
			return err
		}
		for i, e := range v.Elems {
			if _, err := fmt.Fprintf(w, "%s  [%d]: ", pad, i); err != nil {
				return err
			}
			if err := dump(w, e, depth+1); err != nil {
				return err
			}
		}
		return nil
	case ObjectType:
		if _, err := fmt.Fprintf(w, "%s (%d)\n", v.Type, len(v.Members)); err != nil {
			return err
		}
		slices.SortFunc(v.Members, func(a, b Member) int { return strings.Compare(a.Key, b.Key) })
		for _, m := range v.Members {
			if _, err := fmt.Fprintf(w, "%s  %q: ", pad, m.Key); err != nil {
				return err
			}
			if err := dump(w, m.Val, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err = fmt.Fprintf(w, "%s\n", v.Type)
		return err
	}
}
