package generator

import (
	"fmt"
	"sort"
	"strings"
)

// Generator produces a fresh secret value from generator-specific parameters.
// Implementations must draw randomness from a cryptographically secure source
// and must not retain or log produced values.
type Generator interface {
	Generate(params map[string]string) ([]byte, error)
}

// Error reports an invalid generator invocation. It is user-fixable input
// validation, not an infrastructure failure.
type Error struct {
	Kind   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("generator %q: %s", e.Kind, e.Reason)
}

// Registry maps generator kind names to implementations. It is populated
// during process startup and read-only afterwards.
type Registry struct {
	kinds map[string]Generator
}

func NewRegistry() *Registry {
	return &Registry{kinds: map[string]Generator{}}
}

func (r *Registry) Register(kind string, gen Generator) {
	r.kinds[kind] = gen
}

func (r *Registry) Has(kind string) bool {
	_, ok := r.kinds[kind]
	return ok
}

// Kinds returns the registered kind names in stable order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.kinds))
	for kind := range r.kinds {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func (r *Registry) Generate(kind string, params map[string]string) ([]byte, error) {
	gen, ok := r.kinds[kind]
	if !ok {
		return nil, &Error{Kind: kind, Reason: fmt.Sprintf("unknown kind, expected one of [%s]", strings.Join(r.Kinds(), ", "))}
	}
	return gen.Generate(params)
}

const (
	KindDefault      = "default"
	KindAlphanumeric = "alphanumeric"
	KindHex          = "hex"
	KindUUID         = "uuid"
)

// NewDefaultRegistry returns a registry with all built-in generator kinds.
// The "default" kind is an alias of "alphanumeric".
func NewDefaultRegistry(defaultLength int) *Registry {
	alnum := &Alphanumeric{DefaultLength: defaultLength}

	r := NewRegistry()
	r.Register(KindDefault, alnum)
	r.Register(KindAlphanumeric, alnum)
	r.Register(KindHex, &Hex{})
	r.Register(KindUUID, &UUID{})
	return r
}
