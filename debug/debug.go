// Package debug gates diagnostic logging on REMAP_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Apply bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Apply = boolEnv("REMAP_DEBUG_APPLY")
	d.Eval = boolEnv("REMAP_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Apply() bool {
	return d.Apply
}

func Eval() bool {
	return d.Eval
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
