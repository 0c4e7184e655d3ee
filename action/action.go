// Package action holds the evaluator registry for named actions and
// the built-in action set.
package action

import (
	"sort"
	"sync"

	"github.com/remap-format/remap/ir"
)

// Action evaluates a named operation over already-resolved argument
// values. Implementations must not mutate their arguments.
type Action interface {
	String() string
	Eval(args []*ir.Node) (*ir.Node, error)
}

type name string

func (n name) String() string {
	return string(n)
}

var (
	mu sync.RWMutex
	d  = map[string]Action{}
)

// Register adds a to the registry, replacing any action with the same
// name. Registration must complete before concurrent evaluation begins;
// the registry is read-only while transforms run.
func Register(a Action) {
	mu.Lock()
	defer mu.Unlock()
	d[a.String()] = a
}

// RegisterFunc registers a plain function under the given name.
func RegisterFunc(actionName string, fn func(args []*ir.Node) (*ir.Node, error)) {
	Register(&funcAction{name: name(actionName), fn: fn})
}

type funcAction struct {
	name
	fn func(args []*ir.Node) (*ir.Node, error)
}

func (a *funcAction) Eval(args []*ir.Node) (*ir.Node, error) {
	return a.fn(args)
}

// Lookup returns the action registered under name, or nil.
func Lookup(name string) Action {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Actions lists the registered actions sorted by name.
func Actions() []Action {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Action, 0, len(d))
	for _, a := range d {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].String() < res[j].String() })
	return res
}

func init() {
	Register(Join())
	Register(Len())
	Register(StripStart())
	Register(StripEnd())
	Register(Sum())
	Register(Trim())
	Register(TrimStart())
	Register(TrimEnd())
}
