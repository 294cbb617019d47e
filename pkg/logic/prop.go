package logic

import (
	"fmt"
	"sync/atomic"
)

// Proposition is an atomic proposition or a conjunction of propositions.
type Proposition interface {
	fmt.Stringer
	isProposition()
}

// AtomicProp is a predicate name paired with the Cons-list of its logical
// arguments (Nil for a zero-argument predicate). The built-in predicates
// cut ("!") and "true" are atomic propositions with a Nil argument term;
// dispatch on them happens before any knowledge-base lookup.
type AtomicProp struct {
	Pred string
	Term Term
}

func (AtomicProp) isProposition() {}

func (p AtomicProp) String() string {
	if IsNil(p.Term) {
		return p.Pred
	}
	args := listTerms(p.Term)
	s := p.Pred + "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// listTerms collects the elements of a proper Cons list, in order.
func listTerms(t Term) []Term {
	var out []Term
	cur := t
	for {
		c, ok := cur.(Cons)
		if !ok {
			break
		}
		out = append(out, c.Head)
		cur = c.Tail
	}
	return out
}

// Conj is the conjunction of two propositions, proved left to right.
type Conj struct {
	Left  Proposition
	Right Proposition
}

func (Conj) isProposition() {}

func (p Conj) String() string {
	return fmt.Sprintf("%s, %s", p.Left, p.Right)
}

// PropVars returns every variable occurring in p, left to right, with
// repetition.
func PropVars(p Proposition) []Variable {
	switch x := p.(type) {
	case AtomicProp:
		return Vars(x.Term)
	case Conj:
		return append(PropVars(x.Left), PropVars(x.Right)...)
	default:
		panic(fmt.Sprintf("logic: unhandled proposition type %T", p))
	}
}

// PropWithFreshID rewrites every variable in p to carry id.
func PropWithFreshID(p Proposition, id int) Proposition {
	switch x := p.(type) {
	case AtomicProp:
		return AtomicProp{Pred: x.Pred, Term: WithFreshID(x.Term, id)}
	case Conj:
		return Conj{Left: PropWithFreshID(x.Left, id), Right: PropWithFreshID(x.Right, id)}
	default:
		panic(fmt.Sprintf("logic: unhandled proposition type %T", p))
	}
}

// Rule is a Horn clause: a head that can be concluded, and an optional
// goal that must be proved first. A nil Goal makes the rule an axiom (a
// fact).
type Rule struct {
	Head AtomicProp
	Goal Proposition
}

func (r Rule) String() string {
	if r.Goal == nil {
		return r.Head.String() + "."
	}
	return fmt.Sprintf("%s :- %s.", r.Head, r.Goal)
}

// idCounter is the process-wide source of fresh renaming ids, advanced
// under sync/atomic so callers on different goroutines never collide.
var idCounter int64

// FreshID returns a new globally unique id, never FreshSentinel or zero.
func FreshID() int {
	return int(atomic.AddInt64(&idCounter, 1))
}

// RefreshRule renames the variables of r to a single fresh id, shared by
// the head and the goal so the instantiated rule stays internally
// coreferent.
func RefreshRule(r Rule) Rule {
	id := FreshID()
	head := AtomicProp{Pred: r.Head.Pred, Term: WithFreshID(r.Head.Term, id)}
	var goal Proposition
	if r.Goal != nil {
		goal = PropWithFreshID(r.Goal, id)
	}
	return Rule{Head: head, Goal: goal}
}

// Refresh renames every variable in p to a single fresh id. Used by the
// query driver to instantiate a query's variables before proving it.
func Refresh(p Proposition) Proposition {
	return PropWithFreshID(p, FreshID())
}
