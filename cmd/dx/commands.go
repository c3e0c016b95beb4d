package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "dx").
		WithSynopsis("dx [opts] command [opts]").
		WithDescription("dx destructures json objects by pattern.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dxMain(cfg, cc, args)
		}).
		WithSubs(
			BindCommand(cfg),
			CompileCommand(cfg),
			ExplainCommand(cfg))
}

func BindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("bind").
		WithAliases("b").
		WithSynopsis("bind [-patch file] <pattern> [files]").
		WithDescription("bind a pattern against json values").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dxBind(cfg, cc, args)
		})
	cfg.Bind = cmd
	return cmd
}

func CompileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompileConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("compile").
		WithAliases("c").
		WithSynopsis("compile <pattern>").
		WithDescription("show the normalized pattern and merger plan").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dxCompile(cfg, cc, args)
		})
	cfg.Compile = cmd
	return cmd
}

func ExplainCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExplainConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("explain").
		WithAliases("e", "ex").
		WithSynopsis("explain <pattern> [files]").
		WithDescription("show why a pattern fails against json values").
		WithRun(func(cc *cli.Context, args []string) error {
			return dxExplain(cfg, cc, args)
		})
	cfg.Explain = cmd
	return cmd
}
