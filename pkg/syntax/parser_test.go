package syntax

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nilterm/resolver/pkg/logic"
)

func parseOne(t *testing.T, src string) Statement {
	t.Helper()
	p, err := NewParser(src)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	stmt, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	return stmt
}

func TestParseFact(t *testing.T) {
	stmt := parseOne(t, "father(haakon, olav).")
	rs, ok := stmt.(RuleStatement)
	if !ok {
		t.Fatalf("got %T, want RuleStatement", stmt)
	}
	want := logic.Rule{
		Head: logic.AtomicProp{
			Pred: "father",
			Term: logic.NewList(logic.Atom{Name: "haakon"}, logic.Atom{Name: "olav"}),
		},
	}
	if diff := cmp.Diff(want, rs.Rule); diff != "" {
		t.Errorf("Rule mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRuleWithConjunctiveBody(t *testing.T) {
	stmt := parseOne(t, "grandfather(X, Y) :- father(X, Z), father(Z, Y).")
	rs, ok := stmt.(RuleStatement)
	if !ok {
		t.Fatalf("got %T, want RuleStatement", stmt)
	}
	if rs.Rule.Goal == nil {
		t.Fatal("expected a non-nil goal")
	}
	conj, ok := rs.Rule.Goal.(logic.Conj)
	if !ok {
		t.Fatalf("got %T, want logic.Conj", rs.Rule.Goal)
	}
	left, ok := conj.Left.(logic.AtomicProp)
	if !ok || left.Pred != "father" {
		t.Errorf("Left = %v, want father(...)", conj.Left)
	}
}

func TestParseQueryWithArrowForm(t *testing.T) {
	stmt := parseOne(t, "?- grandfather(haakon, Y).")
	qs, ok := stmt.(QueryStatement)
	if !ok {
		t.Fatalf("got %T, want QueryStatement", stmt)
	}
	ap, ok := qs.Query.(logic.AtomicProp)
	if !ok || ap.Pred != "grandfather" {
		t.Errorf("Query = %v, want grandfather(...)", qs.Query)
	}
}

func TestParseQueryWithTrailingQuestionMark(t *testing.T) {
	stmt := parseOne(t, "grandfather(haakon, Y)?")
	qs, ok := stmt.(QueryStatement)
	if !ok {
		t.Fatalf("got %T, want QueryStatement", stmt)
	}
	if _, ok := qs.Query.(logic.AtomicProp); !ok {
		t.Errorf("Query = %v, want an AtomicProp", qs.Query)
	}
}

func TestParseNestedCompoundArgument(t *testing.T) {
	stmt := parseOne(t, "p(f(X, Y)).")
	rs := stmt.(RuleStatement)
	args := rs.Rule.Head.Term.(logic.Cons)
	inner, ok := args.Head.(logic.App)
	if !ok {
		t.Fatalf("got %T, want logic.App", args.Head)
	}
	if got, want := inner.String(), "f(X, Y)"; got != want {
		t.Errorf("inner.String() = %q, want %q", got, want)
	}
}

func TestParseListLiteral(t *testing.T) {
	stmt := parseOne(t, "p([a, b | T]).")
	rs := stmt.(RuleStatement)
	args := rs.Rule.Head.Term.(logic.Cons)
	if got, want := args.Head.String(), "[a, b|T]"; got != want {
		t.Errorf("list = %q, want %q", got, want)
	}
}

func TestParseCutAtom(t *testing.T) {
	stmt := parseOne(t, "p(X) :- !.")
	rs := stmt.(RuleStatement)
	cut, ok := rs.Rule.Goal.(logic.AtomicProp)
	if !ok || !logic.IsCut(cut) {
		t.Errorf("Goal = %v, want the cut atom", rs.Rule.Goal)
	}
}

func TestParserReturnsEOF(t *testing.T) {
	p, err := NewParser("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Next(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestParseErrorReportsLine(t *testing.T) {
	p, err := NewParser("father(haakon, olav).\nbogus(")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Next(); err != nil {
		t.Fatalf("first statement should parse cleanly: %v", err)
	}
	_, err = p.Next()
	if err == nil {
		t.Fatal("expected a parse error on the second statement")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %q, want it to name line 2", err)
	}
}

func TestParseMultipleStatements(t *testing.T) {
	p, err := NewParser("a.\nb.\n")
	if err != nil {
		t.Fatal(err)
	}
	var got []Statement
	for {
		stmt, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, stmt)
	}
	if len(got) != 2 {
		t.Fatalf("got %d statements, want 2", len(got))
	}
}
