package debug

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/ir"
)

var dumper = &spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}

func Logf(msg string, args ...any) {
	for i := range args {
		if n, ok := args[i].(*ir.Node); ok {
			args[i] = encode.MustString(n)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// LogAny dumps an arbitrary structure, useful for merger and pattern trees
// which do not render as values.
func LogAny(v any) {
	dumper.Fdump(os.Stderr, v)
}
