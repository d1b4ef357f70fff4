package abi

var bySymbol = func() map[Symbol]Spec {
	m := make(map[Symbol]Spec, len(specs))
	for _, s := range specs {
		m[s.Symbol] = s
	}
	return m
}()

// Lookup returns the spec for sym.
func Lookup(sym Symbol) (Spec, bool) {
	s, ok := bySymbol[sym]
	return s, ok
}

// MustLookup returns the spec for sym and panics on unknown symbols.
// Use it only with the declared Symbol constants.
func MustLookup(sym Symbol) Spec {
	s, ok := bySymbol[sym]
	if !ok {
		panic("abi: unknown symbol " + string(sym))
	}
	return s
}

// Specs returns every entry point in table order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// ComponentSpecs returns the entry points of one component.
func ComponentSpecs(c Component) []Spec {
	var out []Spec
	for _, s := range specs {
		if s.Symbol.Component() == c {
			out = append(out, s)
		}
	}
	return out
}
