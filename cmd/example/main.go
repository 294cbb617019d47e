// Command example demonstrates the resolver's facade against a small
// family-tree knowledge base and a classic cut-scoping example, without
// any of the REPL's interactive machinery.
package main

import (
	"fmt"

	"github.com/nilterm/resolver/pkg/logic"
	"github.com/nilterm/resolver/pkg/prover"
	"github.com/nilterm/resolver/pkg/resolver"
)

func main() {
	fmt.Println("=== Resolver Examples ===")
	fmt.Println()

	familyTree()
	cutCommitsToFirstRule()
}

func atom(name string) logic.Term { return logic.Atom{Name: name} }

func variable(name string) logic.Term {
	return logic.Var{Variable: logic.Variable{Name: name, ID: logic.FreshSentinel}}
}

func prop(pred string, args ...logic.Term) logic.AtomicProp {
	return logic.AtomicProp{Pred: pred, Term: logic.NewList(args...)}
}

// familyTree demonstrates a rule whose body is a conjunction of two calls
// to a predicate defined only by facts.
func familyTree() {
	fmt.Println("1. Family tree:")

	ps := resolver.New()
	facts := []logic.Rule{
		{Head: prop("father", atom("haakon"), atom("olav"))},
		{Head: prop("father", atom("olav"), atom("harald"))},
	}
	var err error
	for _, f := range facts {
		ps, err = ps.Assume(f)
		if err != nil {
			panic(err)
		}
	}

	x, y, z := variable("X"), variable("Y"), variable("Z")
	ps, err = ps.Assume(logic.Rule{
		Head: prop("grandfather", x, y),
		Goal: logic.Conj{
			Left:  prop("father", x, z),
			Right: prop("father", z, y),
		},
	})
	if err != nil {
		panic(err)
	}

	solutions, cancel := ps.Query(prop("grandfather", atom("haakon"), variable("Y")))
	defer cancel()
	for sol := range solutions {
		fmt.Printf("   grandfather(haakon, Y) => %s\n", describe(sol))
	}
	fmt.Println()
}

// cutCommitsToFirstRule demonstrates that a cut in a rule's body commits
// the predicate to that rule, without affecting unrelated queries.
func cutCommitsToFirstRule() {
	fmt.Println("2. Cut commits to the first matching rule:")

	ps := resolver.New()
	var err error
	ps, err = ps.Assume(logic.Rule{
		Head: prop("category", atom("a")),
		Goal: logic.AtomicProp{Pred: logic.CutPred, Term: logic.Nil},
	})
	if err != nil {
		panic(err)
	}
	ps, err = ps.Assume(logic.Rule{Head: prop("category", atom("b"))})
	if err != nil {
		panic(err)
	}

	solutions, cancel := ps.Query(prop("category", variable("X")))
	defer cancel()
	for sol := range solutions {
		fmt.Printf("   category(X) => %s\n", describe(sol))
	}
	fmt.Println()
}

func describe(sol prover.Solution) string {
	s := ""
	for i, b := range sol {
		if i > 0 {
			s += ", "
		}
		if b.Unbound {
			s += b.Name + " = " + b.Name
			continue
		}
		s += fmt.Sprintf("%s = %s", b.Name, b.Term)
	}
	return s
}
