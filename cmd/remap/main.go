package main

import (
	"context"

	"github.com/scott-cotton/cli"

	_ "github.com/remap-format/remap/script"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
