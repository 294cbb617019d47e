package logic

import "github.com/nilterm/resolver/internal/rerrors"

// KnowledgeBase is an append-only, value-semantic index of rules by
// predicate name. Assume never mutates its receiver; it returns an
// extended KnowledgeBase, so a caller holding an older value continues to
// see the knowledge base as it was.
type KnowledgeBase struct {
	rules map[string][]Rule
}

// EmptyKB returns the knowledge base with no rules.
func EmptyKB() *KnowledgeBase {
	return &KnowledgeBase{rules: map[string][]Rule{}}
}

// Assume returns a new knowledge base with r appended to the rule list for
// its head's predicate, preserving insertion order. It rejects a rule
// whose head has an empty predicate name.
func (kb *KnowledgeBase) Assume(r Rule) (*KnowledgeBase, error) {
	if r.Head.Pred == "" {
		return kb, rerrors.New("logic: rule head has empty predicate name: %v", r)
	}
	next := make(map[string][]Rule, len(kb.rules)+1)
	for pred, rs := range kb.rules {
		next[pred] = rs
	}
	existing := next[r.Head.Pred]
	extended := make([]Rule, len(existing)+1)
	copy(extended, existing)
	extended[len(existing)] = r
	next[r.Head.Pred] = extended
	return &KnowledgeBase{rules: next}, nil
}

// Rules returns the rules known for pred, in insertion order. An unknown
// predicate yields an empty slice, never an error.
func (kb *KnowledgeBase) Rules(pred string) []Rule {
	return kb.rules[pred]
}
