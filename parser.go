package units

import (
	"fmt"
	"strings"
)

// Parser is a hand-rolled recursive-descent parser over the Tokenizer,
// producing the Expr/Query trees this module evaluates. The textual
// grammar is a convenience front end so queries can be exercised from
// plain text instead of built up by hand.
type Parser struct {
	tok *Tokenizer
	cur Token
}

// NewParser returns a Parser positioned at the first token of input.
func NewParser(input string) *Parser {
	p := &Parser{tok: NewTokenizer(input)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.tok.Next()
}

// ParseQuery parses a full query: an optional "factorize" prefix, an
// optional "-> target" conversion suffix, or a bare expression.
func ParseQuery(input string) (Query, error) {
	p := NewParser(input)
	q, err := p.parseQuery()
	if err != nil {
		return ErrorQuery{Msg: err.Error()}, nil
	}
	return q, nil
}

func (p *Parser) parseQuery() (Query, error) {
	if p.cur.Kind == Invalid {
		return nil, fmt.Errorf("%s", p.cur.Value)
	}
	if p.cur.Kind == Identifier && p.cur.Value == "factorize" {
		p.advance()
		e, err := p.parseExprTop()
		if err != nil {
			return nil, err
		}
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		return FactorizeQuery{E: e}, nil
	}

	e, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == Arrow {
		p.advance()
		conv, err := p.parseConversion()
		if err != nil {
			return nil, err
		}
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		return ConvertQuery{Top: e, To: conv}, nil
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return ExprQuery{E: e}, nil
}

func (p *Parser) expectEOF() error {
	if p.cur.Kind != EOF {
		return fmt.Errorf("unexpected trailing input: %s", p.cur.Value)
	}
	return nil
}

var temperatureScaleNames = map[string]string{
	"degC": "C", "degF": "F", "degRe": "Re", "degRo": "Ro", "degDe": "De", "degN": "N",
}

func (p *Parser) parseConversion() (Conversion, error) {
	if p.cur.Kind == LBracket {
		p.advance()
		var names []string
		if p.cur.Kind != RBracket {
			for {
				if p.cur.Kind != Identifier {
					return nil, fmt.Errorf("expected unit name in conversion list, got %s", p.cur.Value)
				}
				names = append(names, p.cur.Value)
				p.advance()
				if p.cur.Kind == Comma {
					p.advance()
					continue
				}
				break
			}
		}
		if p.cur.Kind != RBracket {
			return nil, fmt.Errorf("expected ']' to close conversion list")
		}
		p.advance()
		return ListConversion{Units: names}, nil
	}
	if p.cur.Kind == Identifier {
		if scale, ok := temperatureScaleNames[p.cur.Value]; ok {
			p.advance()
			return TemperatureConversion{Scale: scale}, nil
		}
	}
	if p.cur.Kind == Degree {
		p.advance()
		if p.cur.Kind != Identifier {
			return nil, fmt.Errorf("expected a temperature scale after '°'")
		}
		scale, ok := suffixScaleCodes[p.cur.Value]
		if !ok {
			return nil, fmt.Errorf("unrecognized temperature scale %q", p.cur.Value)
		}
		p.advance()
		return TemperatureConversion{Scale: scale}, nil
	}
	e, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	return ExprConversion{E: e}, nil
}

// ParseExpr parses a single expression, for use outside a full query
// (e.g. definitions and tests).
func ParseExpr(input string) (Expr, error) {
	p := NewParser(input)
	e, err := p.parseExprTop()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseExprTop() (Expr, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == Equal {
		p.advance()
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		return Equals{L: left, R: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAdd() (Expr, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == Plus || p.cur.Kind == Minus {
		op := byte('+')
		if p.cur.Kind == Minus {
			op = '-'
		}
		p.advance()
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, L: left, R: right}
	}
	return left, nil
}

func startsFactor(k TokenKind) bool {
	switch k {
	case NumberLit, Identifier, QuotedIdent, DateLit, LParen:
		return true
	default:
		return false
	}
}

func (p *Parser) parseMul() (Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	args := []Expr{first}
	var result Expr = first

	for {
		switch {
		case p.cur.Kind == Star:
			p.advance()
			next, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			args = append(args, next)
			result = Mul{Args: args}
		case p.cur.Kind == Slash:
			p.advance()
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if len(args) > 1 {
				result = Mul{Args: args}
			}
			result = Binary{Op: '/', L: result, R: rhs}
			args = []Expr{result}
		case startsFactor(p.cur.Kind):
			next, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			args = append(args, next)
			result = Mul{Args: args}
		default:
			if len(args) > 1 {
				return Mul{Args: args}, nil
			}
			return result, nil
		}
	}
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.cur.Kind == Plus || p.cur.Kind == Minus {
		op := byte('+')
		if p.cur.Kind == Minus {
			op = '-'
		}
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Unary{Op: op, X: x}, nil
	}
	return p.parsePow()
}

func (p *Parser) parsePow() (Expr, error) {
	base, err := p.parseSuffix()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == Caret {
		p.advance()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Binary{Op: '^', L: base, R: exp}, nil
	}
	return base, nil
}

var suffixScaleCodes = map[string]string{
	"C": "C", "F": "F", "Re": "Re", "Ro": "Ro", "De": "De", "N": "N",
	"Ré": "Re", "Rø": "Ro",
}

func (p *Parser) parseSuffix() (Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == Identifier {
		if scale, ok := temperatureScaleNames[p.cur.Value]; ok {
			p.advance()
			return Suffix{Scale: scale, X: x}, nil
		}
	}
	if p.cur.Kind == Degree {
		p.advance()
		if p.cur.Kind != Identifier {
			return nil, fmt.Errorf("expected a temperature scale after '°'")
		}
		scale, ok := suffixScaleCodes[p.cur.Value]
		if !ok {
			return nil, fmt.Errorf("unrecognized temperature scale %q", p.cur.Value)
		}
		p.advance()
		return Suffix{Scale: scale, X: x}, nil
	}
	return x, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	switch p.cur.Kind {
	case NumberLit:
		lit := parseLiteralToken(p.cur.Value)
		p.advance()
		return lit, nil
	case Identifier:
		name := p.cur.Value
		p.advance()
		if p.cur.Kind == LParen {
			p.advance()
			var args []Expr
			if p.cur.Kind != RParen {
				for {
					arg, err := p.parseAdd()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if p.cur.Kind == Comma {
						p.advance()
						continue
					}
					break
				}
			}
			if p.cur.Kind != RParen {
				return nil, fmt.Errorf("expected ')' to close call to %s", name)
			}
			p.advance()
			return Call{Name: name, Args: args}, nil
		}
		return Ident{Name: name}, nil
	case QuotedIdent:
		name := p.cur.Value
		p.advance()
		return Quoted{Name: name}, nil
	case DateLit:
		raw := p.cur.Value
		p.advance()
		return DateLiteral{Raw: raw}, nil
	case LParen:
		p.advance()
		e, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != RParen {
			return nil, fmt.Errorf("expected ')'")
		}
		p.advance()
		return e, nil
	default:
		return nil, fmt.Errorf("unexpected token %s", p.cur.Value)
	}
}

func parseLiteralToken(s string) Literal {
	intPart, fracPart, expPart := s, "", ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		expPart = s[i+1:]
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	} else {
		intPart = s
	}
	return Literal{IntPart: intPart, FracPart: fracPart, ExpPart: expPart}
}
