// Package closure builds the "closure axiom" three-valued formula for
// a quorum network (spec component D): the conjunction of every
// entity's positive and negative agreement axioms, plus the
// network-wide and pairwise intertwinedness obligations.
package closure

import (
	"github.com/nano-o/tvl/quorum"
	"github.com/nano-o/tvl/tvl"
)

// Two disjoint symbol namespaces avoid the collision risk spec.md §9
// flags: a validator id and a quorum set's content hash could
// otherwise produce the same symbol name.
const (
	validatorPrefix = "V:"
	qsetPrefix      = "Q:"
)

// ValidatorSymbol is the stable three-valued variable standing for
// validator id's agreement.
func ValidatorSymbol(id string) tvl.Formula {
	return tvl.Var{Name: validatorPrefix + id}
}

// QSetSymbol is the stable three-valued variable standing for a quorum
// set's own agreement, keyed by its content fingerprint so that
// structurally-equal quorum sets share one symbol.
func QSetSymbol(q *quorum.QuorumSet) tvl.Formula {
	return tvl.Var{Name: qsetPrefix + q.Fingerprint().String()}
}
