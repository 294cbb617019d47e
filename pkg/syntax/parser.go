package syntax

import (
	"io"

	"github.com/nilterm/resolver/pkg/logic"
)

// Parser reads Statement values out of Horn-clause source text, one
// clause at a time.
type Parser struct {
	z   *tokenizer
	cur token
}

// NewParser returns a Parser positioned at the start of src.
func NewParser(src string) (*Parser, error) {
	p := &Parser{z: newTokenizer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.z.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) expect(kind tokenKind, what string) (token, error) {
	if p.cur.kind != kind {
		return token{}, newParseError(p.cur.line, "expected %s", what)
	}
	tok := p.cur
	return tok, p.advance()
}

// Next parses and returns the next Statement. It returns io.EOF, wrapped
// by nothing further, once the input is exhausted.
func (p *Parser) Next() (Statement, error) {
	if p.cur.kind == tokEOF {
		return nil, io.EOF
	}
	if p.cur.kind == tokQueryOp {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.finishQuery()
	}

	head, err := p.parseAtomicProp()
	if err != nil {
		return nil, err
	}

	switch p.cur.kind {
	case tokPeriod:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return RuleStatement{Rule: logic.Rule{Head: head}}, nil
	case tokQuestion:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return QueryStatement{Query: head}, nil
	case tokRuleOp:
		if err := p.advance(); err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokPeriod, "'.'"); err != nil {
			return nil, err
		}
		return RuleStatement{Rule: logic.Rule{Head: head, Goal: body}}, nil
	default:
		return nil, newParseError(p.cur.line, "expected '.', '?' or ':-' after a clause head")
	}
}

func (p *Parser) finishQuery() (Statement, error) {
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokPeriod, "'.'"); err != nil {
		return nil, err
	}
	return QueryStatement{Query: body}, nil
}

// parseBody parses a comma-separated conjunction of atomic propositions,
// right-folded into nested Conj values.
func (p *Parser) parseBody() (logic.Proposition, error) {
	first, err := p.parseAtomicProp()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokComma {
		return first, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rest, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return logic.Conj{Left: first, Right: rest}, nil
}

// parseAtomicProp parses a predicate name followed by an optional
// parenthesized, comma-separated argument list, producing an AtomicProp
// whose Term is the Cons-list of those arguments (Nil when there are
// none).
func (p *Parser) parseAtomicProp() (logic.AtomicProp, error) {
	tok, err := p.expect(tokAtom, "a predicate name")
	if err != nil {
		return logic.AtomicProp{}, err
	}
	pred := tok.text

	if p.cur.kind != tokLParen {
		return logic.AtomicProp{Pred: pred, Term: logic.Nil}, nil
	}
	if err := p.advance(); err != nil {
		return logic.AtomicProp{}, err
	}
	var args []logic.Term
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return logic.AtomicProp{}, err
		}
		args = append(args, arg)
		if p.cur.kind == tokComma {
			if err := p.advance(); err != nil {
				return logic.AtomicProp{}, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return logic.AtomicProp{}, err
	}
	return logic.AtomicProp{Pred: pred, Term: logic.NewList(args...)}, nil
}

// parseTerm parses a term in argument position: a variable, an atom, a
// compound (atom followed by a parenthesized argument list, encoded by
// left-associative currying), or a bracketed list.
func (p *Parser) parseTerm() (logic.Term, error) {
	switch p.cur.kind {
	case tokVar:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return logic.Var{Variable: logic.Variable{Name: name, ID: logic.FreshSentinel}}, nil
	case tokLBracket:
		return p.parseList()
	case tokAtom:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind != tokLParen {
			return logic.Atom{Name: name}, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		var term logic.Term = logic.Atom{Name: name}
		for {
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			term = logic.App{Functor: term, Arg: arg}
			if p.cur.kind == tokComma {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return term, nil
	default:
		return nil, newParseError(p.cur.line, "expected a term")
	}
}

// parseList parses "[" (Term ("," Term)* ("|" Term)?)? "]" into a Cons
// chain, Nil-terminated unless a "|" tail was given.
func (p *Parser) parseList() (logic.Term, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	if p.cur.kind == tokRBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return logic.Nil, nil
	}

	var elems []logic.Term
	var tail logic.Term = logic.Nil
	for {
		elem, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.cur.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if p.cur.kind == tokBar {
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		tail = t
	}
	if _, err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = logic.Cons{Head: elems[i], Tail: result}
	}
	return result, nil
}
