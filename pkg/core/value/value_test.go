package value_test

import (
	"testing"

	"github.com/fenlang/fen/pkg/core/bignum"
	"github.com/fenlang/fen/pkg/core/value"
)

func TestKindFollowsVariant(t *testing.T) {
	cases := []struct {
		v    value.Value
		want value.Kind
	}{
		{value.Int{X: bignum.New(42)}, value.KindInt},
		{value.Num{X: 3.5}, value.KindNum},
		{value.Str{X: "hi"}, value.KindString},
		{value.Object{}, value.KindObject},
		{value.Function{Name: "f"}, value.KindFunction},
	}
	for _, tc := range cases {
		if got := tc.v.Kind(); got != tc.want {
			t.Errorf("Kind() = %v, want %v", got, tc.want)
		}
		if got := value.Temp(tc.v).Kind(); got != tc.want {
			t.Errorf("Temp(...).Kind() = %v, want %v", got, tc.want)
		}
	}
}

func TestInvalidVariable(t *testing.T) {
	var zero value.Variable
	if zero.Kind() != value.KindInvalid {
		t.Errorf("zero Variable kind = %v, want invalid", zero.Kind())
	}
	if value.Invalid().Kind() != value.KindInvalid {
		t.Errorf("Invalid() kind = %v", value.Invalid().Kind())
	}
	if got := value.Invalid().Text(); got != "invalid" {
		t.Errorf("Invalid().Text() = %q", got)
	}
}

func TestCanonicalText(t *testing.T) {
	cases := []struct {
		v    value.Value
		want string
	}{
		{value.Int{X: bignum.New(42)}, "42"},
		{value.Int{X: bignum.New(-7)}, "-7"},
		{value.Num{X: 3.5}, "3.5"},
		{value.Num{X: 2}, "2"},
		{value.Num{X: -0.25}, "-0.25"},
		{value.Str{X: "x="}, "x="},
		{value.Object{}, "<object>"},
		{value.Function{}, "<function>"},
		{value.Function{Name: "main"}, "<function main>"},
	}
	for _, tc := range cases {
		if got := tc.v.Text(); got != tc.want {
			t.Errorf("Text() = %q, want %q", got, tc.want)
		}
	}
}

func TestBindAndTemp(t *testing.T) {
	bound := value.Bind("x", true, value.Int{X: bignum.New(1)})
	if !bound.Named() || bound.Name() != "x" || !bound.Dynamic {
		t.Errorf("Bind metadata wrong: %+v", bound)
	}
	frozen := value.Bind("c", false, value.Str{X: "s"})
	if frozen.Dynamic {
		t.Errorf("const binding reports dynamic")
	}
	tmp := value.Temp(value.Num{X: 1})
	if tmp.Named() || tmp.Name() != "" {
		t.Errorf("Temp must be anonymous: %+v", tmp)
	}
}
