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

	return cli.NewCommandAt(&cfg.Main, "remap").
		WithSynopsis("remap [opts] command [opts]").
		WithDescription("remap restructures object documents with getter/setter expression pairs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return remapMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			ActionsCommand(cfg),
			DiffCommand(cfg))
}

func remapMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	cfg.Main.Usage(cc, nil)
	return nil
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply -f ops.json [files]").
		WithDescription("apply an operation list to object documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func ActionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ActionsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("actions").
		WithAliases("ac").
		WithSynopsis("actions").
		WithDescription("list registered actions and custom action parsers").
		WithRun(func(cc *cli.Context, args []string) error {
			return actions(cfg, cc, args)
		})
	cfg.Actions = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff -f ops.json [file]").
		WithDescription("show what an operation list changes in a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
