package strategy

import (
	"fmt"
	"sort"

	"github.com/san-kum/sinebench/internal/interp"
	"github.com/san-kum/sinebench/internal/lut"
)

// Options configure the strategies a Registry builds.
type Options struct {
	Table        *lut.Table
	Lerp         interp.Formula
	LibraryInput InputMode
}

type Registry struct {
	strategies map[string]func() Strategy
}

func NewRegistry(opts Options) *Registry {
	r := &Registry{strategies: make(map[string]func() Strategy)}

	r.strategies["table"] = func() Strategy { return NewTable(opts.Table) }
	r.strategies["table-lerp"] = func() Strategy { return NewInterpolatedTable(opts.Table, opts.Lerp) }
	r.strategies["fsin-inline"] = func() Strategy { return NewHardwareInline() }
	r.strategies["fsin-call"] = func() Strategy { return NewHardwareCall() }
	r.strategies["libm"] = func() Strategy { return NewLibrary(opts.LibraryInput) }

	return r
}

func (r *Registry) Get(name string) (Strategy, error) {
	fn, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return fn(), nil
}

// Names returns the registered keys in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
