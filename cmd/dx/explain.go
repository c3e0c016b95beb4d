package main

import (
	"fmt"

	destructure "github.com/destructure-format/go-destructure"
	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/merge"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func dxExplain(cfg *ExplainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Explain.Parse(cc, args)
	if err != nil {
		cfg.Explain.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: explain requires a pattern argument", cli.ErrUsage)
	}
	compiled, err := destructure.CompileString(args[0], destructure.CompileSink(logSink{}))
	if err != nil {
		return fmt.Errorf("error compiling pattern: %w", err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		value, err := cfg.readValue(arg, "")
		if err != nil {
			return err
		}
		adjusted, err := merge.Merge(compiled.Merger, value)
		if err != nil {
			fmt.Fprintf(cc.Out, "%s: merge failed: %v\n", arg, err)
			continue
		}
		if _, err := compiled.Destructure(value); err == nil {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
			continue
		} else {
			fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
		}
		// show where the adjusted value diverges from the pattern shape
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(compiled.Norm.String(), encode.MustString(adjusted), false)
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs)))
	}
	return nil
}
