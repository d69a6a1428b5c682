package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/ovitem/item"
)

// Logf writes a debug message to stderr. *item.Node arguments are
// rendered with item.Dump.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*item.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := item.Dump(buf, x); err != nil {
			args[i] = fmt.Sprintf("[raw *item.Node] %p", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
