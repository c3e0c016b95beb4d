package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/ir"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Sym   bool `cli:"name=sym desc='treat input object keys as symbols'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
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
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readValue loads a JSON document from arg ("-" for stdin), applies the
// merge patch if one was given, and lifts the result into the ir.
func (cfg *MainConfig) readValue(arg, patchFile string) (*ir.Node, error) {
	var rdr io.Reader
	if arg == "-" {
		rdr = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rdr = f
	}
	raw, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	if patchFile != "" {
		patch, err := os.ReadFile(patchFile)
		if err != nil {
			return nil, fmt.Errorf("error reading patch %s: %w", patchFile, err)
		}
		raw, err = jsonpatch.MergePatch(raw, patch)
		if err != nil {
			return nil, fmt.Errorf("error applying patch %s: %w", patchFile, err)
		}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	if cfg.Sym {
		node = ir.SymbolizeKeys(node)
	}
	return node, nil
}

type BindConfig struct {
	*MainConfig
	Patch string `cli:"name=patch desc='merge patch file applied to the input'"`

	Bind *cli.Command
}

type CompileConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress advisory notices'"`

	Compile *cli.Command
}

type ExplainConfig struct {
	*MainConfig

	Explain *cli.Command
}
