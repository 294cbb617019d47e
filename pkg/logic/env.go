package logic

// Env is an immutable substitution table. Every mutating-looking operation
// returns a new Env; the receiver is never modified, so a caller's handle
// to an Env remains valid no matter what anyone does with the value
// returned from Bind.
type Env struct {
	bindings map[Variable]Term
}

// EmptyEnv returns the environment that binds nothing.
func EmptyEnv() *Env {
	return &Env{bindings: map[Variable]Term{}}
}

// TryFind reports the term v is directly bound to, if any. It does not
// chase chains of bindings; see Substitute for that.
func (e *Env) TryFind(v Variable) (Term, bool) {
	t, ok := e.bindings[v]
	return t, ok
}

// Substitute walks t, replacing every bound variable with its binding,
// recursively, until it reaches an unbound variable or a non-variable
// term. The no-self-binding invariant Bind maintains makes chains of
// variable-to-variable bindings terminate. There is no occurs check, so a
// variable bound to a compound term that contains it (X = f(X)) makes
// Substitute recurse without end.
func (e *Env) Substitute(t Term) Term {
	switch x := t.(type) {
	case Var:
		if bound, ok := e.TryFind(x.Variable); ok {
			return e.Substitute(bound)
		}
		return x
	case Atom:
		return x
	case App:
		return App{Functor: e.Substitute(x.Functor), Arg: e.Substitute(x.Arg)}
	case Cons:
		return Cons{Head: e.Substitute(x.Head), Tail: e.Substitute(x.Tail)}
	default:
		panic("logic: unhandled term type in Substitute")
	}
}

// Bind extends e with v bound to t, returning the new environment. The
// caller must ensure v is currently unbound in e; Unify is the only
// caller and maintains that precondition. If t resolves (via e) to v
// itself, e is returned unchanged rather than introducing a self-binding,
// which would make Substitute loop forever.
func (e *Env) Bind(v Variable, t Term) *Env {
	resolved := e.Substitute(t)
	if rv, ok := resolved.(Var); ok && rv.Variable == v {
		return e
	}
	next := make(map[Variable]Term, len(e.bindings)+1)
	for k, val := range e.bindings {
		next[k] = val
	}
	next[v] = resolved
	return &Env{bindings: next}
}

// Unify attempts to make a and b equal under e, returning the extended
// environment and true on success. On failure it returns e unchanged —
// unification is steadfast, never leaving behind a partial binding from a
// failed attempt. Variable cases are checked before the constant-matching
// cases, so a variable unifies with anything, including another variable.
func Unify(e *Env, a, b Term) (*Env, bool) {
	if va, ok := a.(Var); ok {
		if bound, ok := e.TryFind(va.Variable); ok {
			return Unify(e, b, e.Substitute(bound))
		}
		return e.Bind(va.Variable, b), true
	}
	if vb, ok := b.(Var); ok {
		if bound, ok := e.TryFind(vb.Variable); ok {
			return Unify(e, a, e.Substitute(bound))
		}
		return e.Bind(vb.Variable, a), true
	}
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		if ok && x.Name == y.Name {
			return e, true
		}
		return e, false
	case App:
		y, ok := b.(App)
		if !ok {
			return e, false
		}
		e1, ok := Unify(e, x.Functor, y.Functor)
		if !ok {
			return e, false
		}
		e2, ok := Unify(e1, x.Arg, y.Arg)
		if !ok {
			return e, false
		}
		return e2, true
	case Cons:
		y, ok := b.(Cons)
		if !ok {
			return e, false
		}
		e1, ok := Unify(e, x.Head, y.Head)
		if !ok {
			return e, false
		}
		e2, ok := Unify(e1, x.Tail, y.Tail)
		if !ok {
			return e, false
		}
		return e2, true
	default:
		return e, false
	}
}
