package value_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fenlang/fen/pkg/core/bignum"
	"github.com/fenlang/fen/pkg/core/value"
)

func intVar(x int64) value.Variable   { return value.Temp(value.Int{X: bignum.New(x)}) }
func numVar(x float64) value.Variable { return value.Temp(value.Num{X: x}) }
func strVar(s string) value.Variable  { return value.Temp(value.Str{X: s}) }

// render gives a kind-qualified view of a result for table comparisons.
func render(v value.Variable) string {
	return v.Kind().String() + ":" + v.Text()
}

func TestOperatorScenarios(t *testing.T) {
	cases := []struct {
		name string
		op   value.BinaryOp
		l, r value.Variable
		want string
	}{
		{"int add", value.OpAdd, intVar(2), intVar(3), "int:5"},
		{"int promotes to num", value.OpAdd, intVar(2), numVar(3.5), "num:5.5"},
		{"num with int rhs", value.OpSub, numVar(0.5), intVar(2), "num:-1.5"},
		{"num num", value.OpMul, numVar(1.5), numVar(2), "num:3"},
		{"int sub", value.OpSub, intVar(2), intVar(7), "int:-5"},
		{"int mul", value.OpMul, intVar(-4), intVar(6), "int:-24"},
		{"int div truncates", value.OpDiv, intVar(7), intVar(2), "int:3"},
		{"int div truncates negative", value.OpDiv, intVar(-7), intVar(2), "int:-3"},
		{"int div by zero", value.OpDiv, intVar(7), intVar(0), "invalid:invalid"},
		{"int mod by zero", value.OpMod, intVar(7), intVar(0), "invalid:invalid"},
		{"mod sign follows dividend", value.OpMod, intVar(-7), intVar(3), "int:-1"},
		{"mod positive dividend", value.OpMod, intVar(7), intVar(-3), "int:1"},
		{"int pow", value.OpPow, intVar(2), intVar(10), "int:1024"},
		{"pow zero exponent", value.OpPow, intVar(0), intVar(0), "int:1"},
		{"negative exponent", value.OpPow, intVar(2), intVar(-1), "invalid:invalid"},
		{"num pow", value.OpPow, numVar(2), numVar(-1), "num:0.5"},
		{"concat string int", value.OpConcat, strVar("x="), intVar(42), "string:x=42"},
		{"concat int string", value.OpConcat, intVar(42), strVar("!"), "string:42!"},
		{"concat renders both", value.OpConcat, intVar(1), numVar(2.5), "string:12.5"},
		{"concat strings", value.OpConcat, strVar("a"), strVar("b"), "string:ab"},
		{"add strings is invalid", value.OpAdd, strVar("a"), strVar("b"), "invalid:invalid"},
		{"string with number", value.OpMul, strVar("a"), intVar(2), "invalid:invalid"},
		{"object arithmetic", value.OpAdd, value.Temp(value.Object{}), intVar(1), "invalid:invalid"},
		{"function concat", value.OpConcat, value.Temp(value.Function{}), strVar("x"), "invalid:invalid"},
		{"invalid operand", value.OpAdd, value.Invalid(), intVar(1), "invalid:invalid"},
	}

	var got, want []string
	for _, tc := range cases {
		got = append(got, tc.name+" -> "+render(value.Eval(tc.op, tc.l, tc.r)))
		want = append(want, tc.name+" -> "+tc.want)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("operator results mismatch (-want +got):\n%s", diff)
	}
}

func TestResultsAreTemporaries(t *testing.T) {
	l := value.Bind("a", true, value.Int{X: bignum.New(2)})
	r := value.Bind("b", false, value.Int{X: bignum.New(3)})
	res := value.Add(l, r)
	if res.Named() {
		t.Errorf("operator result carries a name: %q", res.Name())
	}
}

func TestOperandsNotMutated(t *testing.T) {
	a := intVar(7)
	b := intVar(3)
	value.Div(a, b)
	value.Mod(a, b)
	value.Pow(a, b)
	if a.Text() != "7" || b.Text() != "3" {
		t.Errorf("operands mutated: a=%s b=%s", a.Text(), b.Text())
	}

	// Aliased operands must read consistently.
	if got := value.Add(a, a).Text(); got != "14" {
		t.Errorf("a + a = %s, want 14", got)
	}
}

func TestBigIntegerArithmeticStaysExact(t *testing.T) {
	big, err := bignum.ParseInt("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	v := value.Temp(value.Int{X: big})
	got := value.Mul(v, v)
	if got.Kind() != value.KindInt {
		t.Fatalf("big mul kind = %v", got.Kind())
	}
	want := "15241578753238836750495351562536198787501905199875019052100"
	if got.Text() != want {
		t.Errorf("big mul = %s, want %s", got.Text(), want)
	}
}

func TestFloatDivisionFollowsIEEE(t *testing.T) {
	res := value.Div(numVar(1), numVar(0))
	if res.Kind() != value.KindNum {
		t.Fatalf("float div by zero kind = %v, want num", res.Kind())
	}
	if f := res.Value.(value.Num).X; !math.IsInf(f, 1) {
		t.Errorf("1/0.0 = %v, want +Inf", f)
	}
}

func TestEvalUnknownOpIsInvalid(t *testing.T) {
	if got := value.Eval(value.BinaryOp(200), intVar(1), intVar(2)); got.Kind() != value.KindInvalid {
		t.Errorf("unknown op kind = %v, want invalid", got.Kind())
	}
}
