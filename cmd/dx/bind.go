package main

import (
	"fmt"

	destructure "github.com/destructure-format/go-destructure"
	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/ir"

	"github.com/scott-cotton/cli"
)

func dxBind(cfg *BindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bind.Parse(cc, args)
	if err != nil {
		cfg.Bind.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: bind requires a pattern argument", cli.ErrUsage)
	}
	compiled, err := destructure.CompileString(args[0])
	if err != nil {
		return fmt.Errorf("error compiling pattern: %w", err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		value, err := cfg.readValue(arg, cfg.Patch)
		if err != nil {
			return err
		}
		bound, err := compiled.Destructure(value)
		if err != nil {
			return fmt.Errorf("error binding %s: %w", arg, err)
		}
		res := ir.FromMap(map[string]*ir.Node(bound))
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
