package logic

// Names of the two built-in predicates the prover dispatches before
// consulting the knowledge base. Both take the Nil argument term, matching
// the zero-argument proposition convention.
const (
	CutPred  = "!"
	TruePred = "true"
)

// IsCut reports whether p is the cut proposition.
func IsCut(p AtomicProp) bool {
	return p.Pred == CutPred && IsNil(p.Term)
}

// IsTrue reports whether p is the always-succeeding proposition.
func IsTrue(p AtomicProp) bool {
	return p.Pred == TruePred && IsNil(p.Term)
}
