// Package resolver is the proof-system facade: the narrow surface a REPL
// or any other caller uses to build up a knowledge base and run queries
// against it, without needing to know anything about streams, contexts or
// the prover's internals.
package resolver

import (
	"context"

	"github.com/nilterm/resolver/pkg/logic"
	"github.com/nilterm/resolver/pkg/prover"
)

// ProofSystem pairs a knowledge base with the operations to extend and
// query it. It is value-semantic: Assume never mutates the receiver, so
// a caller can hold onto an older ProofSystem while another part of the
// program builds an extension of it.
type ProofSystem struct {
	kb *logic.KnowledgeBase
}

// New returns a ProofSystem with an empty knowledge base.
func New() *ProofSystem {
	return &ProofSystem{kb: logic.EmptyKB()}
}

// Assume returns a new ProofSystem with rule added to the knowledge base.
// It rejects a rule whose head carries an empty predicate name.
func (ps *ProofSystem) Assume(rule logic.Rule) (*ProofSystem, error) {
	next, err := ps.kb.Assume(rule)
	if err != nil {
		return ps, err
	}
	return &ProofSystem{kb: next}, nil
}

// Query proves goal against the current knowledge base, returning a
// channel of solutions and a cancel function. The caller may range over
// the channel to exhaustion, or call cancel to abandon the search early;
// either way, no goroutine is left running once the caller stops pulling.
func (ps *ProofSystem) Query(goal logic.Proposition) (<-chan prover.Solution, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return prover.Query(ctx, goal, logic.EmptyEnv(), ps.kb), cancel
}
