package main

import (
	"fmt"
	"io"

	"github.com/remap-format/remap"
	"github.com/remap-format/remap/ir"

	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.OpsFile == "" {
		return fmt.Errorf("%w: apply requires -f <opsfile>", cli.ErrUsage)
	}
	ops, err := cfg.loadOps(cfg.OpsFile)
	if err != nil {
		return fmt.Errorf("error loading ops %q: %w", cfg.OpsFile, err)
	}
	t, err := remap.Build(ops...)
	if err != nil {
		return fmt.Errorf("error building %q: %w", cfg.OpsFile, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := applyFile(cfg, cc, t, arg); err != nil {
			return fmt.Errorf("error transforming %s: %w", arg, err)
		}
		if i < len(args)-1 {
			io.WriteString(cc.Out, "\n")
		}
	}
	return nil
}

func applyFile(cfg *ApplyConfig, cc *cli.Context, t *remap.Transform, path string) error {
	d, err := getInput(cc, path)
	if err != nil {
		return err
	}
	in, err := cfg.decodeInput(path, d)
	if err != nil {
		return err
	}
	out, err := t.Apply(in)
	if err != nil {
		return err
	}
	res, err := marshalOut(cfg.MainConfig, out)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(append(res, '\n'))
	return err
}

func marshalOut(cfg *MainConfig, y *ir.Node) ([]byte, error) {
	if cfg.Pretty {
		return ir.MarshalIndent(y)
	}
	return ir.Marshal(y)
}
