package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nano-o/tvl/classical"
)

func TestBacktrackingIsSat(t *testing.T) {
	require := require.New(t)
	b := NewBacktracking()
	ctx := context.Background()

	p := classical.Lit{Name: "p"}

	sat, err := b.IsSat(ctx, classical.And{X: p, Y: classical.Not{X: p}})
	require.NoError(err)
	require.False(sat, "p & !p is unsatisfiable")

	sat, err = b.IsSat(ctx, classical.Or{X: p, Y: classical.Not{X: p}})
	require.NoError(err)
	require.True(sat, "p | !p is satisfiable")
}

func TestBacktrackingIsValid(t *testing.T) {
	require := require.New(t)
	b := NewBacktracking()
	ctx := context.Background()

	p := classical.Lit{Name: "p"}

	valid, err := b.IsValid(ctx, classical.Or{X: p, Y: classical.Not{X: p}})
	require.NoError(err)
	require.True(valid, "p | !p is a tautology")

	valid, err = b.IsValid(ctx, p)
	require.NoError(err)
	require.False(valid, "a bare variable is not valid")
}

func TestBacktrackingMaximizeMinimizesTrueEdges(t *testing.T) {
	require := require.New(t)
	b := NewBacktracking()
	ctx := context.Background()

	// Three variables; hard constraint requires at least one true;
	// soft rewards each being false. The optimum keeps exactly one
	// true.
	a, bb2, c := classical.Lit{Name: "a"}, classical.Lit{Name: "b"}, classical.Lit{Name: "c"}
	hard := []classical.Formula{classical.Or{X: classical.Or{X: a, Y: bb2}, Y: c}}
	soft := []classical.Formula{classical.Not{X: a}, classical.Not{X: bb2}, classical.Not{X: c}}
	weights := []int{1, 1, 1}

	model, err := b.Maximize(ctx, hard, soft, weights)
	require.NoError(err)

	trueCount := 0
	for _, v := range model {
		if v {
			trueCount++
		}
	}
	require.Equal(1, trueCount, "exactly one variable should be forced true")
}
