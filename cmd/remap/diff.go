package main

import (
	"fmt"
	"io"
	"os"

	"github.com/remap-format/remap"
	"github.com/remap-format/remap/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.OpsFile == "" {
		return fmt.Errorf("%w: diff requires -f <opsfile>", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: diff takes at most one file, got %v", cli.ErrUsage, args)
	}
	ops, err := cfg.loadOps(cfg.OpsFile)
	if err != nil {
		return fmt.Errorf("error loading ops %q: %w", cfg.OpsFile, err)
	}
	t, err := remap.Build(ops...)
	if err != nil {
		return fmt.Errorf("error building %q: %w", cfg.OpsFile, err)
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	d, err := getInput(cc, path)
	if err != nil {
		return err
	}
	in, err := cfg.decodeInput(path, d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	out, err := t.Apply(in)
	if err != nil {
		return err
	}
	if cfg.Text {
		return textDiff(cfg, cc.Out, in, out)
	}
	return mergePatch(cfg, cc.Out, in, out)
}

// mergePatch emits the rfc 7386 merge patch turning the input document
// into the transform output.
func mergePatch(cfg *DiffConfig, w io.Writer, in, out *ir.Node) error {
	a, err := ir.Marshal(in)
	if err != nil {
		return err
	}
	b, err := ir.Marshal(out)
	if err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return fmt.Errorf("error creating merge patch: %w", err)
	}
	if cfg.Pretty {
		y, err := ir.Unmarshal(patch)
		if err != nil {
			return err
		}
		if patch, err = ir.MarshalIndent(y); err != nil {
			return err
		}
	}
	_, err = w.Write(append(patch, '\n'))
	return err
}

func textDiff(cfg *DiffConfig, w io.Writer, in, out *ir.Node) error {
	a, err := ir.MarshalIndent(in)
	if err != nil {
		return err
	}
	b, err := ir.MarshalIndent(out)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(string(a), string(b), true)
	if useColor(cfg, w) {
		_, err = io.WriteString(w, colorText(diffs))
		return err
	}
	_, err = io.WriteString(w, plainText(diffs))
	return err
}

func useColor(cfg *DiffConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func colorText(diffs []diffpatch.Diff) string {
	var (
		res string
		ins = color.New(color.FgGreen)
		del = color.New(color.FgRed, color.CrossedOut)
	)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			res += ins.Sprint(d.Text)
		case diffpatch.DiffDelete:
			res += del.Sprint(d.Text)
		case diffpatch.DiffEqual:
			res += d.Text
		}
	}
	return res + "\n"
}

func plainText(diffs []diffpatch.Diff) string {
	var res string
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			res += "{+" + d.Text + "+}"
		case diffpatch.DiffDelete:
			res += "[-" + d.Text + "-]"
		case diffpatch.DiffEqual:
			res += d.Text
		}
	}
	return res + "\n"
}
