package prover

import (
	"context"

	"github.com/nilterm/resolver/pkg/logic"
)

// Binding pairs a query variable's original name with the term it was
// resolved to. Unbound is set when the query driver could not pin the
// variable down to anything more specific than itself.
type Binding struct {
	Name    string
	Term    logic.Term
	Unbound bool
}

// Solution is one answer to a query: the bindings of its distinct
// variables, in first-occurrence order within the renamed query.
type Solution []Binding

// Query refreshes prop's variables, proves it against kb starting from
// env, and projects each resulting environment into a Solution over
// prop's distinct variables. Solutions are produced lazily; the returned
// channel closes once the search is exhausted or ctx is done.
func Query(ctx context.Context, prop logic.Proposition, env *logic.Env, kb *logic.KnowledgeBase) <-chan Solution {
	renamed := logic.Refresh(prop)
	vars := distinctVars(logic.PropVars(renamed))

	out := make(chan Solution)
	go func() {
		defer close(out)
		for res := range Prove(ctx, renamed, env, kb) {
			sol := make(Solution, len(vars))
			for i, vr := range vars {
				sol[i] = project(res.Env, vr)
			}
			select {
			case out <- sol:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// project resolves vr as far as env will take it. If the result is still
// a bare variable, it is unbound — Substitute never returns a Var for a
// bound one, so this check is exact, not a heuristic.
func project(env *logic.Env, vr logic.Variable) Binding {
	t := env.Substitute(logic.Var{Variable: vr})
	if _, ok := t.(logic.Var); ok {
		return Binding{Name: vr.Name, Unbound: true}
	}
	return Binding{Name: vr.Name, Term: t}
}

// distinctVars keeps the first occurrence of each variable, dropping
// later repeats, so a query's Solution reports each variable once.
func distinctVars(vs []logic.Variable) []logic.Variable {
	seen := make(map[logic.Variable]bool, len(vs))
	out := make([]logic.Variable, 0, len(vs))
	for _, v := range vs {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
