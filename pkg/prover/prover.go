// Package prover implements depth-first proof search with cut over a
// logic.KnowledgeBase. A proof is realized as a pull-driven stream: the
// caller asks for one Result at a time, and production happens in a
// goroutine that blocks on an unbuffered channel send between pulls, so a
// caller who stops pulling and cancels its context leaves no running work
// behind and no side effect is ever observed beyond what was pulled.
package prover

import (
	"context"
	"fmt"

	"github.com/nilterm/resolver/pkg/logic"
)

// Result is one proof step: the environment it was proved under, and
// whether a cut was encountered while proving it. Cut is local to the
// stream that produced it; Prove masks it back to false once it has acted
// on it at a rule boundary (see proveAtomic).
type Result struct {
	Env *logic.Env
	Cut bool
}

// Prove returns a stream of every way prop can be proved true starting
// from env against kb, in depth-first, left-to-right, rule-insertion
// order. The returned channel is closed once every alternative has been
// produced or ctx is done, whichever comes first.
func Prove(ctx context.Context, prop logic.Proposition, env *logic.Env, kb *logic.KnowledgeBase) <-chan Result {
	switch x := prop.(type) {
	case logic.AtomicProp:
		return proveAtomic(ctx, x, env, kb)
	case logic.Conj:
		return proveConj(ctx, x.Left, x.Right, env, kb)
	default:
		panic(fmt.Sprintf("prover: unhandled proposition type %T", prop))
	}
}

// proveAtomic proves a single atomic proposition: built-ins are dispatched
// before the knowledge base is ever consulted, so a user-defined rule
// named "!" or "true" with a Nil argument can never shadow them.
func proveAtomic(ctx context.Context, p logic.AtomicProp, env *logic.Env, kb *logic.KnowledgeBase) <-chan Result {
	out := make(chan Result)
	go func() {
		defer close(out)

		emit := func(r Result) bool {
			select {
			case out <- r:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if logic.IsCut(p) {
			emit(Result{Env: env, Cut: true})
			return
		}
		if logic.IsTrue(p) {
			emit(Result{Env: env, Cut: false})
			return
		}

		for _, rule := range kb.Rules(p.Pred) {
			select {
			case <-ctx.Done():
				return
			default:
			}

			fresh := logic.RefreshRule(rule)
			env1, ok := logic.Unify(env, p.Term, fresh.Head.Term)
			if !ok {
				continue
			}

			if fresh.Goal == nil {
				// A fact: one solution, no cut to mask.
				if !emit(Result{Env: env1, Cut: false}) {
					return
				}
				continue
			}

			subCtx, cancel := context.WithCancel(ctx)
			sub := Prove(subCtx, fresh.Goal, env1, kb)
			cutHit := false
			for res := range sub {
				// Cut is masked here: it never escapes the rule that
				// contained it.
				if !emit(Result{Env: res.Env, Cut: false}) {
					cancel()
					return
				}
				if res.Cut {
					cutHit = true
					break
				}
			}
			cancel()
			if cutHit {
				// Commits to this rule: no further candidate rules for p
				// are tried.
				return
			}
		}
	}()
	return out
}

// proveConj proves left then, for each way it succeeds, proves right under
// the resulting environment, bubbling the OR of both cut flags upward. It
// performs no stopping of its own: the stopping behavior cut requires is
// implemented entirely by proveAtomic's consumption of a rule's goal
// stream, and because this stream is pull-driven, ceasing to pull from it
// naturally prevents left from ever being asked for another alternative.
func proveConj(ctx context.Context, left, right logic.Proposition, env *logic.Env, kb *logic.KnowledgeBase) <-chan Result {
	out := make(chan Result)
	go func() {
		defer close(out)
		for l := range Prove(ctx, left, env, kb) {
			for r := range Prove(ctx, right, l.Env, kb) {
				select {
				case out <- Result{Env: r.Env, Cut: l.Cut || r.Cut}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
