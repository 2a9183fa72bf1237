package value

import (
	"errors"
	"math"

	"github.com/fenlang/fen/pkg/core/bignum"
)

// BinaryOp selects one of the seven binary operators. The set is closed;
// Eval indexes a fixed dispatch table by it.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpConcat
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "^"
	case OpConcat:
		return ".."
	default:
		return "?"
	}
}

// opTable is the operator dispatch table the evaluator indexes while
// reducing an expression.
var opTable = [...]func(Variable, Variable) Variable{
	OpAdd:    Add,
	OpSub:    Sub,
	OpMul:    Mul,
	OpDiv:    Div,
	OpMod:    Mod,
	OpPow:    Pow,
	OpConcat: Concat,
}

// Eval applies op to l and r. Like every operator it is total: failures
// of any sort come back as the invalid variable, never as a panic or an
// error value, so callers must check the result tag.
func Eval(op BinaryOp, l, r Variable) Variable {
	if int(op) >= len(opTable) {
		return Invalid()
	}
	return opTable[op](l, r)
}

// Add returns l + r.
func Add(l, r Variable) Variable { return arith(OpAdd, l, r) }

// Sub returns l - r.
func Sub(l, r Variable) Variable { return arith(OpSub, l, r) }

// Mul returns l * r.
func Mul(l, r Variable) Variable { return arith(OpMul, l, r) }

// Div returns l / r. Integer division truncates toward zero; an integer
// divisor of zero yields the invalid variable.
func Div(l, r Variable) Variable { return arith(OpDiv, l, r) }

// Mod returns l % r with the sign of the dividend on the integer path.
func Mod(l, r Variable) Variable { return arith(OpMod, l, r) }

// Pow returns l raised to r. An integer base with a negative integer
// exponent yields the invalid variable: an int never silently becomes
// a fraction.
func Pow(l, r Variable) Variable { return arith(OpPow, l, r) }

// Concat renders both operands to their canonical text and joins them.
// It is purely textual; it never coerces strings to numbers.
func Concat(l, r Variable) Variable {
	if !textual(l.Kind()) || !textual(r.Kind()) {
		return Invalid()
	}
	return Temp(Str{l.Text() + r.Text()})
}

func textual(k Kind) bool {
	return k == KindInt || k == KindNum || k == KindString
}

func numeric(k Kind) bool {
	return k == KindInt || k == KindNum
}

// arith applies the coercion table: int op int stays exact, any mix of
// int and num promotes to num, everything else is invalid with no
// partial computation.
func arith(op BinaryOp, l, r Variable) Variable {
	lk, rk := l.Kind(), r.Kind()
	switch {
	case lk == KindInt && rk == KindInt:
		res, err := intArith(op, l.Value.(Int).X, r.Value.(Int).X)
		if err != nil {
			return Invalid()
		}
		return Temp(Int{res})
	case numeric(lk) && numeric(rk):
		return Temp(Num{numArith(op, toFloat(l), toFloat(r))})
	default:
		return Invalid()
	}
}

func toFloat(v Variable) float64 {
	if i, ok := v.Value.(Int); ok {
		return i.X.Float64()
	}
	return v.Value.(Num).X
}

var errUnsupportedOp = errors.New("value: unsupported integer operator")

func intArith(op BinaryOp, l, r *bignum.Int) (*bignum.Int, error) {
	switch op {
	case OpAdd:
		return l.Add(r), nil
	case OpSub:
		return l.Sub(r), nil
	case OpMul:
		return l.Mul(r), nil
	case OpDiv:
		return l.Quo(r)
	case OpMod:
		return l.Rem(r)
	case OpPow:
		return l.Pow(r)
	default:
		return nil, errUnsupportedOp
	}
}

// numArith follows native float64 semantics throughout: division by
// zero gives an infinity, as does overflow.
func numArith(op BinaryOp, l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	case OpMod:
		return math.Mod(l, r)
	case OpPow:
		return math.Pow(l, r)
	default:
		return math.NaN()
	}
}
