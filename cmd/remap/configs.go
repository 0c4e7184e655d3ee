package main

import (
	"fmt"
	"io"
	"os"

	"github.com/remap-format/remap"
	"github.com/remap-format/remap/ir"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Pretty bool `cli:"name=p aliases=pretty desc='indent json output'"`
	Yaml   bool `cli:"name=y aliases=yaml desc='read input documents and ops files as yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, v string) (any, error) {
	f, err := os.Create(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Out = v
	cfg.CloseOut = f.Close
	cc.Out = f
	return v, nil
}

// loadOps reads an ops file, yaml when -y is given or the filename says
// so, json otherwise.
func (cfg *MainConfig) loadOps(path string) ([]remap.Op, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if cfg.Yaml || hasYAMLExt(path) {
		return remap.ParseOpsYAML(d)
	}
	return remap.ParseOps(d)
}

func hasYAMLExt(path string) bool {
	for _, ext := range []string{".yaml", ".yml"} {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// decodeInput reads a document as yaml when -y is given or the
// filename says so, json otherwise.
func (cfg *MainConfig) decodeInput(path string, d []byte) (*ir.Node, error) {
	if cfg.Yaml || hasYAMLExt(path) {
		return ir.FromYAML(d)
	}
	return ir.Unmarshal(d)
}

func getInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

type ApplyConfig struct {
	*MainConfig

	OpsFile string `cli:"name=f aliases=ops desc='ops file, a list of src/dst pairs'"`

	Apply *cli.Command
}

type ActionsConfig struct {
	*MainConfig

	Actions *cli.Command
}

type DiffConfig struct {
	*MainConfig

	OpsFile string `cli:"name=f aliases=ops desc='ops file, a list of src/dst pairs'"`
	Text    bool   `cli:"name=text desc='character diff instead of a merge patch'"`
	Color   bool   `cli:"name=color desc='force color in the text diff'"`

	Diff *cli.Command
}
