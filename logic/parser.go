package logic

import "unicode"

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokAnd
	tokOr
	tokImplies
	tokNot
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int // rune offset in the input
}

// Parse parses the formula written in the given text.
// It returns the corresponding Formula.
// Formulas are written using the following operators (from lowest to
// highest priority):
//
//   - for an implication, the right-associative "->" operator,
//   - for a disjunction ("or"), the "v" operator,
//   - for a conjunction ("and"), the "a" operator,
//   - for a negation, the "!" unary operator.
//
// Literals are single uppercase letters and parentheses can be used to
// group subformulas. Whitespace is insignificant. Malformed input yields a
// *SyntaxError identifying the offending position.
func Parse(text string) (Formula, error) {
	tokens, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{Pos: tok.pos, Token: tok.text, Msg: "expected end of formula"}
	}
	return f, nil
}

func lex(text string) ([]token, error) {
	var tokens []token
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
		case r >= 'A' && r <= 'Z':
			tokens = append(tokens, token{tokLiteral, string(r), i})
		case r == 'a':
			tokens = append(tokens, token{tokAnd, "a", i})
		case r == 'v':
			tokens = append(tokens, token{tokOr, "v", i})
		case r == '!':
			tokens = append(tokens, token{tokNot, "!", i})
		case r == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
		case r == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
		case r == '-':
			if i+1 >= len(runes) || runes[i+1] != '>' {
				return nil, &SyntaxError{Pos: i, Token: "-", Msg: "expected '->'"}
			}
			tokens = append(tokens, token{tokImplies, "->", i})
			i++
		default:
			return nil, &SyntaxError{Pos: i, Token: string(r), Msg: "invalid character"}
		}
	}
	return append(tokens, token{tokEOF, "", len(runes)}), nil
}

type parser struct {
	tokens []token
	cur    int
}

func (p *parser) peek() token { return p.tokens[p.cur] }

func (p *parser) next() token {
	tok := p.tokens[p.cur]
	if tok.kind != tokEOF {
		p.cur++
	}
	return tok
}

// Each parse function below handles one precedence level, recursing into
// the next tighter level for its operands.

func (p *parser) parseImplies() (Formula, error) {
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokImplies {
		p.next()
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (Formula, error) {
	f, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokOr {
		p.next()
		f2, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return Or(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseAnd() (Formula, error) {
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokAnd {
		p.next()
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return And(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseNot() (Formula, error) {
	if p.peek().kind == tokNot {
		p.next()
		f, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (Formula, error) {
	tok := p.next()
	switch tok.kind {
	case tokLiteral:
		return Var(tok.text), nil
	case tokLParen:
		f, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &SyntaxError{Pos: closing.pos, Token: closing.text, Msg: "expected closing parenthesis"}
		}
		return f, nil
	case tokEOF:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected end of formula"}
	default:
		return nil, &SyntaxError{Pos: tok.pos, Token: tok.text, Msg: "expected literal, negation or parenthesis"}
	}
}
