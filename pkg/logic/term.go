// Package logic defines the term and proposition algebra the resolver
// operates on: variables, atoms, compound terms, lists, rules, the
// substitution environment and the knowledge base. Nothing in this package
// knows how to search for a proof; see pkg/prover for that.
package logic

import "fmt"

// Variable identifies a logic variable by name and a renaming id. Two
// variables are equal iff both components match, so the same name can
// denote distinct variables across rule instantiations.
//
// Variables carrying id == FreshSentinel are produced by the parser, before
// any rule or query has been instantiated; Refresh replaces the sentinel
// with a real id drawn from the process-wide counter.
type Variable struct {
	Name string
	ID   int
}

// FreshSentinel is the id the parser assigns to every variable it produces.
const FreshSentinel = -1

func (v Variable) String() string {
	if v.ID <= 0 {
		return v.Name
	}
	return fmt.Sprintf("%s_%d", v.Name, v.ID)
}

// Term is the tagged union of the four term variants: Var, Atom, App and
// Cons. The marker method keeps the union closed to this package.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Var wraps a Variable so it can appear wherever a Term is expected.
type Var struct {
	Variable Variable
}

func (Var) isTerm() {}

func (t Var) String() string { return t.Variable.String() }

// Atom is an interned symbol; two atoms are equal iff their names match.
type Atom struct {
	Name string
}

func (Atom) isTerm() {}

func (t Atom) String() string { return t.Name }

// Nil is the distinguished atom terminating every proper list.
var Nil = Atom{Name: "nil"}

// IsNil reports whether t is the list-terminating nil atom.
func IsNil(t Term) bool {
	a, ok := t.(Atom)
	return ok && a.Name == Nil.Name
}

// App is compound application: Functor applied to Arg. N-ary structure is
// encoded by left-associative currying, so f(X, Y, Z) is
// App{App{App{Atom{"f"}, X}, Y}, Z}.
type App struct {
	Functor Term
	Arg     Term
}

func (App) isTerm() {}

func (t App) String() string {
	functor, args := uncurry(t)
	s := functor.String()
	s += "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// uncurry flattens a left-associative App chain back into its functor and
// the ordered list of arguments it was built from.
func uncurry(t App) (Term, []Term) {
	var args []Term
	cur := Term(t)
	for {
		app, ok := cur.(App)
		if !ok {
			break
		}
		args = append([]Term{app.Arg}, args...)
		cur = app.Functor
	}
	return cur, args
}

// Cons is a list cell: Head followed by the rest of the list in Tail. A
// proper list's final Tail is Nil.
type Cons struct {
	Head Term
	Tail Term
}

func (Cons) isTerm() {}

func (t Cons) String() string {
	s := "["
	cur := Term(t)
	first := true
	for {
		c, ok := cur.(Cons)
		if !ok {
			break
		}
		if !first {
			s += ", "
		}
		first = false
		s += c.Head.String()
		cur = c.Tail
	}
	if !IsNil(cur) {
		s += "|" + cur.String()
	}
	return s + "]"
}

// NewList builds a proper Cons list out of terms, Nil-terminated.
func NewList(terms ...Term) Term {
	var tail Term = Nil
	for i := len(terms) - 1; i >= 0; i-- {
		tail = Cons{Head: terms[i], Tail: tail}
	}
	return tail
}

// Vars returns the variables occurring in t, left to right, with
// repetition; callers that need a distinct set should dedupe themselves
// (see prover.distinctVars), preserving first-occurrence order.
func Vars(t Term) []Variable {
	switch x := t.(type) {
	case Var:
		return []Variable{x.Variable}
	case Atom:
		return nil
	case App:
		return append(Vars(x.Functor), Vars(x.Arg)...)
	case Cons:
		return append(Vars(x.Head), Vars(x.Tail)...)
	default:
		panic(fmt.Sprintf("logic: unhandled term type %T", t))
	}
}

// WithFreshID rewrites every variable in t to carry id, leaving names
// untouched. A single id is shared by every variable in one call so that
// coreferent variables within a rule stay coreferent after renaming.
func WithFreshID(t Term, id int) Term {
	switch x := t.(type) {
	case Var:
		return Var{Variable{Name: x.Variable.Name, ID: id}}
	case Atom:
		return x
	case App:
		return App{Functor: WithFreshID(x.Functor, id), Arg: WithFreshID(x.Arg, id)}
	case Cons:
		return Cons{Head: WithFreshID(x.Head, id), Tail: WithFreshID(x.Tail, id)}
	default:
		panic(fmt.Sprintf("logic: unhandled term type %T", t))
	}
}

// Eq reports structural equality between two terms, without consulting any
// environment — two distinct unbound variables are not equal to each other.
func Eq(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Variable == y.Variable
	case Atom:
		y, ok := b.(Atom)
		return ok && x.Name == y.Name
	case App:
		y, ok := b.(App)
		return ok && Eq(x.Functor, y.Functor) && Eq(x.Arg, y.Arg)
	case Cons:
		y, ok := b.(Cons)
		return ok && Eq(x.Head, y.Head) && Eq(x.Tail, y.Tail)
	default:
		return false
	}
}
