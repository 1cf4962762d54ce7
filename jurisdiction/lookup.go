package jurisdiction

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	mu          sync.RWMutex
	definitions = map[string]*Definition{}
	byAlias     = map[string]*Definition{}
)

func init() {
	Register(Canada)
	Register(FederalReserve)
	Register(EuropeanCentralBank)
}

// Register makes def available to Lookup under its code, aliases and
// name. Registering a key twice panics.
func Register(def *Definition) {
	mu.Lock()
	defer mu.Unlock()

	keys := append([]string{def.Code, def.Name}, def.Aliases...)
	for _, key := range keys {
		if key == "" {
			continue
		}
		key = normalizeKey(key)
		if prev, ok := byAlias[key]; ok && prev != def {
			panic(fmt.Sprintf("jurisdiction key %q registered twice", key))
		}
		byAlias[key] = def
	}
	definitions[def.Code] = def
}

// Lookup returns the Definition registered for code, an alias or a name.
// Matching ignores case.
func Lookup(code string) (*Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	def, ok := byAlias[normalizeKey(code)]
	if !ok {
		return nil, UnknownJurisdictionError(code)
	}
	return def, nil
}

// Definitions returns every registered Definition sorted by code.
func Definitions() []*Definition {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]*Definition, 0, len(definitions))
	for _, def := range definitions {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
