package tvl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nano-o/tvl/solver"
)

// TestNotFIsValid pins spec.md §8.4's concrete validity law: is_valid(¬F)
// holds (ported from three_valued_logic_test.py's test_1).
func TestNotFIsValid(t *testing.T) {
	require := require.New(t)
	ok, err := IsValid(context.Background(), solver.NewBacktracking(), Not{FormulaF})
	require.NoError(err)
	require.True(ok)
}

// TestMutualWitnessesAreIntertwined ports three_valued_logic_test.py's
// test_2: p and q each witnessed solely by the other are intertwined.
func TestMutualWitnessesAreIntertwined(t *testing.T) {
	require := require.New(t)
	p, q := Var{"p"}, Var{"q"}
	closedAx := And{Dimp(q, p), And{Dimp(Not{q}, Not{p}), And{Dimp(p, q), Dimp(Not{p}, Not{q})}}}
	formula := Dimp(closedAx, Or{And{p, q}, And{Not{p}, Not{q}}})

	ok, err := IsValid(context.Background(), solver.NewBacktracking(), formula)
	require.NoError(err)
	require.True(ok)
}

// TestSharedWitnessIsIntertwined ports test_3: p and q each witnessed
// solely by a shared r are intertwined.
func TestSharedWitnessIsIntertwined(t *testing.T) {
	require := require.New(t)
	p, q, r := Var{"p"}, Var{"q"}, Var{"r"}
	closedAx := And{Dimp(r, p), And{Dimp(Not{r}, Not{p}), And{Dimp(p, q), Dimp(Not{p}, Not{q})}}}
	formula := Dimp(closedAx, Or{And{p, q}, And{Not{p}, Not{q}}})

	ok, err := IsValid(context.Background(), solver.NewBacktracking(), formula)
	require.NoError(err)
	require.True(ok)
}

// TestDisjointWitnessesBreakIntertwinedness ports test_4: p witnessed
// solely by r, q witnessed solely by s, are not intertwined.
func TestDisjointWitnessesBreakIntertwinedness(t *testing.T) {
	require := require.New(t)
	p, q, r, s := Var{"p"}, Var{"q"}, Var{"r"}, Var{"s"}
	closedAx := And{Dimp(r, p), And{Dimp(Not{r}, Not{p}), And{Dimp(s, q), Dimp(Not{s}, Not{q})}}}
	formula := Dimp(closedAx, Or{And{p, q}, And{Not{p}, Not{q}}})

	ok, err := IsValid(context.Background(), solver.NewBacktracking(), formula)
	require.NoError(err)
	require.False(ok)
}

func TestEncodeMemoizesSharedSubformulas(t *testing.T) {
	require := require.New(t)
	p := Var{"p"}
	shared := And{p, p}
	// Same shared value used twice: the walk must visit it once, so the
	// constraint count reflects 3 distinct subformulas (p, shared,
	// phi) — 1 exclusion constraint for the leaf var plus 2
	// (exclusion + truth table) for each of the two And nodes — not
	// the larger count a naive unmemoized walk over the tree shape
	// (4 leaf + 3 And occurrences) would produce.
	phi := And{shared, shared}

	enc := Encode(phi)
	require.Len(enc.Constraints, 5)
}

func TestAndAllOrAllFold(t *testing.T) {
	require := require.New(t)
	a, b, c := Var{"a"}, Var{"b"}, Var{"c"}
	require.Equal(And{And{a, b}, c}, AndAll([]Formula{a, b, c}))
	require.Equal(Or{Or{a, b}, c}, OrAll([]Formula{a, b, c}))
}
