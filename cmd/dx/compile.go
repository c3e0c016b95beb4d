package main

import (
	"fmt"

	destructure "github.com/destructure-format/go-destructure"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func dxCompile(cfg *CompileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compile.Parse(cc, args)
	if err != nil {
		cfg.Compile.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: compile requires one pattern argument", cli.ErrUsage)
	}
	var opts []destructure.CompileOpt
	if !cfg.Quiet {
		opts = append(opts, destructure.CompileSink(logSink{}))
	}
	compiled, err := destructure.CompileString(args[0], opts...)
	if err != nil {
		return fmt.Errorf("error compiling pattern: %w", err)
	}
	label := fmt.Sprintf
	if cfg.Color {
		label = color.RGB(175, 95, 0).SprintfFunc()
	}
	fmt.Fprintf(cc.Out, "%s %s\n", label("pattern:"), compiled.Norm)
	fmt.Fprintf(cc.Out, "%s  %s\n", label("merger:"), compiled.Merger)
	return nil
}
