package tvl

import (
	"context"

	"github.com/nano-o/tvl/solver"
)

// IsValid reports whether φ is three-valued-valid, by dispatching its
// classical validity translation to adapter.
func IsValid(ctx context.Context, adapter solver.Adapter, phi Formula) (bool, error) {
	return adapter.IsValid(ctx, TranslateForValidity(phi))
}

// IsSat reports whether φ is three-valued-satisfiable, by dispatching
// its classical satisfiability translation to adapter.
func IsSat(ctx context.Context, adapter solver.Adapter, phi Formula) (bool, error) {
	return adapter.IsSat(ctx, TranslateForSatisfiability(phi))
}
