package intertwined

import (
	"context"
	"errors"

	"github.com/nano-o/tvl/closure"
	"github.com/nano-o/tvl/quorum"
	"github.com/nano-o/tvl/solver"
	"github.com/nano-o/tvl/tvl"
)

// CheckNetwork reports whether every pair of validators in n is
// intertwined (spec.md §4.E check_network_intertwined). n must already
// have passed SanityCheck — malformed input is a fatal error raised at
// load time, not something this checker re-validates (spec.md §7).
// metrics is optional; pass none to skip build instrumentation.
func CheckNetwork(ctx context.Context, n *quorum.Network, adapter solver.Adapter, metrics ...*closure.BuildMetrics) (Outcome, error) {
	return decide(ctx, adapter, closure.NetInt(n, metrics...))
}

// CheckPair reports whether validators p and q specifically are
// intertwined (spec.md §4.E check_intertwined).
func CheckPair(ctx context.Context, n *quorum.Network, p, q string, adapter solver.Adapter, metrics ...*closure.BuildMetrics) (Outcome, error) {
	if _, ok := n.Validators[p]; !ok {
		return Unknown, errUnknownValidator(p)
	}
	if _, ok := n.Validators[q]; !ok {
		return Unknown, errUnknownValidator(q)
	}
	return decide(ctx, adapter, closure.PairInt(n, p, q, metrics...))
}

func errUnknownValidator(id string) error {
	return errors.New("intertwined: unknown validator " + id)
}

// decide dispatches a validity check and maps solver indeterminacy
// (timeout or explicit "unknown") to Unknown rather than propagating
// it as an error the caller must distinguish from a real failure.
func decide(ctx context.Context, adapter solver.Adapter, formula tvl.Formula) (Outcome, error) {
	ok, err := tvl.IsValid(ctx, adapter, formula)
	switch {
	case errors.Is(err, solver.ErrIndeterminate), errors.Is(err, context.DeadlineExceeded):
		return Unknown, nil
	case err != nil:
		return Unknown, err
	case ok:
		return True, nil
	default:
		return False, nil
	}
}
