package main

import (
	"fmt"

	"github.com/remap-format/remap/action"
	"github.com/remap-format/remap/parse"

	"github.com/scott-cotton/cli"
)

func actions(cfg *ActionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Actions.Parse(cc, args)
	if err != nil {
		cfg.Actions.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: actions takes no arguments, got %v", cli.ErrUsage, args)
	}
	custom := map[string]bool{}
	for _, name := range parse.ActionParsers() {
		custom[name] = true
	}
	for _, a := range action.Actions() {
		if custom[a.String()] {
			fmt.Fprintf(cc.Out, "%s\t(custom parser)\n", a)
			continue
		}
		fmt.Fprintf(cc.Out, "%s\n", a)
	}
	return nil
}
