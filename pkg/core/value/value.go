// Package value defines the tagged runtime values of the fen language
// and the binary operators that combine them.
package value

import (
	"strconv"

	"github.com/fenlang/fen/pkg/core/bignum"
)

// Kind is the runtime type tag of a value.
type Kind uint8

const (
	KindObject Kind = iota
	KindNum
	KindInt
	KindString
	KindFunction
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindNum:
		return "num"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	default:
		return "invalid"
	}
}

// Value is the payload of a Variable: exactly one of the variant types
// below. The tag is computed from the variant, never stored beside it,
// so a tag/payload mismatch cannot be constructed. A nil Value is the
// invalid state. Values are immutable once built; operators always
// return a fresh value.
type Value interface {
	Kind() Kind
	// Text is the canonical textual rendering, as used by concatenation.
	Text() string
}

// Int is an arbitrary-precision integer value.
type Int struct{ X *bignum.Int }

func (Int) Kind() Kind     { return KindInt }
func (v Int) Text() string { return v.X.String() }

// Num is a floating-point value.
type Num struct{ X float64 }

func (Num) Kind() Kind { return KindNum }

// Text renders in fixed decimal notation, the canonical form for
// concatenation and printing.
func (v Num) Text() string { return strconv.FormatFloat(v.X, 'f', -1, 64) }

// Str is a string value. It owns its bytes: Go strings are immutable,
// so no defensive copy is needed.
type Str struct{ X string }

func (Str) Kind() Kind     { return KindString }
func (v Str) Text() string { return v.X }

// Object is an opaque non-arithmetic value. The arithmetic operators
// reject it.
type Object struct{ Payload any }

func (Object) Kind() Kind   { return KindObject }
func (Object) Text() string { return "<object>" }

// Function is a callable value. Like Object, it only exists so the
// evaluator has a tag for it; no operator accepts it.
type Function struct{ Name string }

func (Function) Kind() Kind { return KindFunction }
func (v Function) Text() string {
	if v.Name == "" {
		return "<function>"
	}
	return "<function " + v.Name + ">"
}

// Variable wraps a Value with binding metadata. A Variable is either
// bound (user-declared, carries its name and mutability) or a temporary
// produced mid-expression; the two constructors below are the only ways
// to make one.
type Variable struct {
	Value   Value
	Dynamic bool // true if the binding may be reassigned
	name    string
}

// Bind returns a named variable for a user declaration.
func Bind(name string, dynamic bool, v Value) Variable {
	return Variable{Value: v, Dynamic: dynamic, name: name}
}

// Temp returns an anonymous intermediate, as produced by operators.
func Temp(v Value) Variable { return Variable{Value: v} }

// Invalid returns the canonical error-tagged variable.
func Invalid() Variable { return Variable{} }

// Kind returns the runtime type tag. The zero Variable is invalid.
func (v Variable) Kind() Kind {
	if v.Value == nil {
		return KindInvalid
	}
	return v.Value.Kind()
}

// Named reports whether v came from a declaration.
func (v Variable) Named() bool { return v.name != "" }

// Name returns the declared name, or "" for temporaries.
func (v Variable) Name() string { return v.name }

// Text returns the canonical rendering of the payload.
func (v Variable) Text() string {
	if v.Value == nil {
		return "invalid"
	}
	return v.Value.Text()
}
