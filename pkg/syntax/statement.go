// Package syntax turns Horn-clause source text into the core's term and
// proposition values. It knows nothing about proving anything: its whole
// job is Statement = Rule | Query, with every variable it produces
// carrying logic.FreshSentinel as its id, ready for the prover to rename
// on first use.
package syntax

import "github.com/nilterm/resolver/pkg/logic"

// Statement is one top-level unit the parser produces: a rule to assume,
// or a query to run.
type Statement interface {
	isStatement()
}

// RuleStatement is a parsed fact or rule, terminated by '.' in the source.
type RuleStatement struct {
	Rule logic.Rule
}

func (RuleStatement) isStatement() {}

// QueryStatement is a parsed query, introduced by "?-" or terminated by a
// trailing '?' in the source.
type QueryStatement struct {
	Query logic.Proposition
}

func (QueryStatement) isStatement() {}
