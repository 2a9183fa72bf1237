// Package eval reduces fen expression source to runtime values. It is
// the operand/operator stack layer between the scanner and the value
// engine: tokens come in, one Variable comes out. Operator failures are
// not errors here; they surface as the invalid variable, and only
// lexical or shape problems (bad token, unbalanced parens, undeclared
// names) return a positioned error.
package eval

import (
	"fmt"
	"strconv"

	"github.com/fenlang/fen/pkg/compiler/lexer"
	"github.com/fenlang/fen/pkg/core/bignum"
	"github.com/fenlang/fen/pkg/core/value"
)

// Evaluate runs one unit of fen source: a declaration
// ("let x = expr", "const x = expr"), an assignment ("x = expr") or a
// bare expression. Declarations and assignments return the stored
// variable so callers can echo it.
func Evaluate(src []byte, env *Env) (value.Variable, error) {
	s := lexer.NewScanner(src)
	var toks []lexer.Token
	for {
		tok := s.Next()
		if tok.Kind == lexer.KindError {
			return value.Invalid(), fmt.Errorf("eval: %d:%d: malformed token %q", tok.Line, tok.Col, s.Lexeme(tok))
		}
		if tok.Kind == lexer.KindEOF {
			break
		}
		toks = append(toks, tok)
	}
	if len(toks) == 0 {
		return value.Invalid(), fmt.Errorf("eval: empty input")
	}

	ev := &evaluator{src: src, env: env}

	if len(toks) >= 4 && toks[0].Kind == lexer.KindIdentifier &&
		toks[1].Kind == lexer.KindIdentifier && toks[2].Kind == lexer.KindAssign {
		keyword := lexemeAt(src, toks[0])
		if keyword == "let" || keyword == "const" {
			res, err := ev.run(toks[3:])
			if err != nil {
				return value.Invalid(), err
			}
			name := lexemeAt(src, toks[1])
			if err := env.Bind(name, keyword == "let", res.Value); err != nil {
				return value.Invalid(), err
			}
			bound, _ := env.Lookup(name)
			return bound, nil
		}
	}

	if len(toks) >= 3 && toks[0].Kind == lexer.KindIdentifier && toks[1].Kind == lexer.KindAssign {
		res, err := ev.run(toks[2:])
		if err != nil {
			return value.Invalid(), err
		}
		name := lexemeAt(src, toks[0])
		if err := env.Assign(name, res.Value); err != nil {
			return value.Invalid(), err
		}
		stored, _ := env.Lookup(name)
		return stored, nil
	}

	return ev.run(toks)
}

// evaluator is a shunting-yard reducer: operands and pending operators
// live on two stacks, and every reduction calls into the value engine's
// dispatch table.
type evaluator struct {
	src       []byte
	env       *Env
	operands  []value.Variable
	operators []lexer.Token // pending operators and '(' markers
}

func (ev *evaluator) run(toks []lexer.Token) (value.Variable, error) {
	expectOperand := true
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Kind {
		case lexer.KindIntegerLit, lexer.KindDoubleLit, lexer.KindStringLit,
			lexer.KindTrue, lexer.KindFalse, lexer.KindIdentifier:
			if !expectOperand {
				return value.Invalid(), ev.errf(tok, "unexpected value %q", lexemeAt(ev.src, tok))
			}
			v, err := ev.operand(tok, false)
			if err != nil {
				return value.Invalid(), err
			}
			ev.operands = append(ev.operands, v)
			expectOperand = false

		case lexer.KindMinus:
			if expectOperand {
				// Unary minus: the scanner never folds signs into
				// literals, so negate the literal that must follow.
				if i+1 >= len(toks) || (toks[i+1].Kind != lexer.KindIntegerLit && toks[i+1].Kind != lexer.KindDoubleLit) {
					return value.Invalid(), ev.errf(tok, "expected numeric literal after unary '-'")
				}
				v, err := ev.operand(toks[i+1], true)
				if err != nil {
					return value.Invalid(), err
				}
				ev.operands = append(ev.operands, v)
				i++
				expectOperand = false
				break
			}
			if err := ev.pushOperator(tok); err != nil {
				return value.Invalid(), err
			}
			expectOperand = true

		case lexer.KindPlus, lexer.KindMultiply, lexer.KindDivide,
			lexer.KindModulus, lexer.KindExponent, lexer.KindStrConcat:
			if expectOperand {
				return value.Invalid(), ev.errf(tok, "unexpected operator %q", lexemeAt(ev.src, tok))
			}
			if err := ev.pushOperator(tok); err != nil {
				return value.Invalid(), err
			}
			expectOperand = true

		case lexer.KindLParen:
			if !expectOperand {
				return value.Invalid(), ev.errf(tok, "unexpected '('")
			}
			ev.operators = append(ev.operators, tok)

		case lexer.KindRParen:
			if expectOperand {
				return value.Invalid(), ev.errf(tok, "expected operand before ')'")
			}
			if err := ev.closeParen(tok); err != nil {
				return value.Invalid(), err
			}

		default:
			return value.Invalid(), ev.errf(tok, "unexpected token %q", lexemeAt(ev.src, tok))
		}
	}

	if expectOperand {
		return value.Invalid(), fmt.Errorf("eval: expression ends with a pending operator")
	}
	for len(ev.operators) > 0 {
		top := ev.operators[len(ev.operators)-1]
		if top.Kind == lexer.KindLParen {
			return value.Invalid(), ev.errf(top, "unclosed '('")
		}
		if err := ev.reduceTop(); err != nil {
			return value.Invalid(), err
		}
	}
	if len(ev.operands) != 1 {
		return value.Invalid(), fmt.Errorf("eval: malformed expression")
	}
	return ev.operands[0], nil
}

// pushOperator reduces every pending operator that binds at least as
// tightly, then stacks tok. Exponent is right-associative, so equal
// precedence does not reduce it.
func (ev *evaluator) pushOperator(tok lexer.Token) error {
	prec := precedence(tok.Kind)
	rightAssoc := tok.Kind == lexer.KindExponent
	for len(ev.operators) > 0 {
		top := ev.operators[len(ev.operators)-1]
		if top.Kind == lexer.KindLParen {
			break
		}
		topPrec := precedence(top.Kind)
		if topPrec < prec || (topPrec == prec && rightAssoc) {
			break
		}
		if err := ev.reduceTop(); err != nil {
			return err
		}
	}
	ev.operators = append(ev.operators, tok)
	return nil
}

func (ev *evaluator) closeParen(tok lexer.Token) error {
	for len(ev.operators) > 0 {
		top := ev.operators[len(ev.operators)-1]
		if top.Kind == lexer.KindLParen {
			ev.operators = ev.operators[:len(ev.operators)-1]
			return nil
		}
		if err := ev.reduceTop(); err != nil {
			return err
		}
	}
	return ev.errf(tok, "unmatched ')'")
}

// reduceTop pops one operator and two operands and pushes the result of
// the dispatch table. Invalid results flow on as operands; the engine
// has no error channel.
func (ev *evaluator) reduceTop() error {
	opTok := ev.operators[len(ev.operators)-1]
	ev.operators = ev.operators[:len(ev.operators)-1]
	if len(ev.operands) < 2 {
		return ev.errf(opTok, "missing operand for %q", lexemeAt(ev.src, opTok))
	}
	r := ev.operands[len(ev.operands)-1]
	l := ev.operands[len(ev.operands)-2]
	ev.operands = ev.operands[:len(ev.operands)-2]

	op, ok := binOp(opTok.Kind)
	if !ok {
		return ev.errf(opTok, "unknown operator %q", lexemeAt(ev.src, opTok))
	}
	ev.operands = append(ev.operands, value.Eval(op, l, r))
	return nil
}

// operand materializes a literal or resolves an identifier. Boolean
// literals evaluate to the integers 1 and 0.
func (ev *evaluator) operand(tok lexer.Token, negate bool) (value.Variable, error) {
	lexeme := lexemeAt(ev.src, tok)
	switch tok.Kind {
	case lexer.KindIntegerLit:
		x, err := bignum.ParseInt(lexeme)
		if err != nil {
			return value.Invalid(), ev.errf(tok, "bad integer literal %q: %v", lexeme, err)
		}
		if negate {
			x = x.Neg()
		}
		return value.Temp(value.Int{X: x}), nil
	case lexer.KindDoubleLit:
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return value.Invalid(), ev.errf(tok, "bad number literal %q: %v", lexeme, err)
		}
		if negate {
			f = -f
		}
		return value.Temp(value.Num{X: f}), nil
	case lexer.KindStringLit:
		return value.Temp(value.Str{X: lexeme}), nil
	case lexer.KindTrue:
		return value.Temp(value.Int{X: bignum.New(1)}), nil
	case lexer.KindFalse:
		return value.Temp(value.Int{X: bignum.New(0)}), nil
	case lexer.KindIdentifier:
		v, ok := ev.env.Lookup(lexeme)
		if !ok {
			return value.Invalid(), ev.errf(tok, "%q is not declared", lexeme)
		}
		return v, nil
	default:
		return value.Invalid(), ev.errf(tok, "expected a value, got %q", lexeme)
	}
}

func (ev *evaluator) errf(tok lexer.Token, format string, args ...any) error {
	return fmt.Errorf("eval: %d:%d: %s", tok.Line, tok.Col, fmt.Sprintf(format, args...))
}

func lexemeAt(src []byte, t lexer.Token) string {
	return string(src[t.Offset : t.Offset+t.Length])
}

// precedence orders the binary operators: exponent binds tightest and
// concatenation loosest, below addition.
func precedence(k lexer.Kind) int {
	switch k {
	case lexer.KindExponent:
		return 4
	case lexer.KindMultiply, lexer.KindDivide, lexer.KindModulus:
		return 3
	case lexer.KindPlus, lexer.KindMinus:
		return 2
	case lexer.KindStrConcat:
		return 1
	default:
		return 0
	}
}

func binOp(k lexer.Kind) (value.BinaryOp, bool) {
	switch k {
	case lexer.KindPlus:
		return value.OpAdd, true
	case lexer.KindMinus:
		return value.OpSub, true
	case lexer.KindMultiply:
		return value.OpMul, true
	case lexer.KindDivide:
		return value.OpDiv, true
	case lexer.KindModulus:
		return value.OpMod, true
	case lexer.KindExponent:
		return value.OpPow, true
	case lexer.KindStrConcat:
		return value.OpConcat, true
	default:
		return 0, false
	}
}
