package parse

import (
	"maps"
	"slices"
	"sync"

	"github.com/remap-format/remap/expr"
)

// ActionParser builds a getter from an action's name and its raw,
// comma-split argument texts. Registering one for a name takes over all
// parsing of name(...) expressions, letting callers add action syntaxes
// the default call grammar cannot express.
type ActionParser func(name string, args []string) (*expr.Getter, error)

var (
	mu      sync.RWMutex
	parsers = map[string]ActionParser{}
)

// RegisterActionParser installs p for name, replacing any previous
// parser. Registration must complete before expressions using the name
// are parsed concurrently.
func RegisterActionParser(name string, p ActionParser) {
	mu.Lock()
	defer mu.Unlock()
	parsers[name] = p
}

func lookupActionParser(name string) ActionParser {
	mu.RLock()
	defer mu.RUnlock()
	return parsers[name]
}

// ActionParsers lists the registered custom parser names.
func ActionParsers() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(parsers))
}
