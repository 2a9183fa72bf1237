// Package bignum implements arbitrary-precision signed integers for the
// fen Int runtime type. An Int is a sign plus base-2^32 limbs stored
// little-endian; the limb slice never carries trailing zero limbs, and
// zero is the empty slice with a positive sign. All operations are pure:
// every result is freshly allocated and operands are never mutated, so
// aliased operands (a + a) are safe.
package bignum

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

var (
	ErrDivisionByZero   = errors.New("bignum: division by zero")
	ErrNegativeExponent = errors.New("bignum: negative exponent")
	ErrMalformedInteger = errors.New("bignum: malformed integer literal")
)

// Int is an arbitrary-precision signed integer.
type Int struct {
	neg   bool
	limbs []uint32 // little-endian, no trailing zero limbs
}

// decimal chunking base: 9 digits per limb-sized chunk.
const (
	chunkBase   = 1_000_000_000
	chunkDigits = 9
)

// New returns the Int representing x.
func New(x int64) *Int {
	z := &Int{}
	u := uint64(x)
	if x < 0 {
		z.neg = true
		u = uint64(-x) // wraps correctly for MinInt64
	}
	for u != 0 {
		z.limbs = append(z.limbs, uint32(u))
		u >>= 32
	}
	return z
}

// norm drops trailing zero limbs and canonicalizes negative zero.
func (z *Int) norm() *Int {
	z.limbs = trim(z.limbs)
	if len(z.limbs) == 0 {
		z.neg = false
	}
	return z
}

// Sign returns -1, 0 or 1.
func (x *Int) Sign() int {
	if len(x.limbs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return len(x.limbs) == 0 }

// Neg returns -x.
func (x *Int) Neg() *Int {
	z := &Int{neg: !x.neg, limbs: copyLimbs(x.limbs)}
	return z.norm()
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	return &Int{limbs: copyLimbs(x.limbs)}
}

// Cmp returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := absCmp(x.limbs, y.limbs)
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	if x.neg == y.neg {
		return (&Int{neg: x.neg, limbs: absAdd(x.limbs, y.limbs)}).norm()
	}
	switch absCmp(x.limbs, y.limbs) {
	case 1:
		return (&Int{neg: x.neg, limbs: absSub(x.limbs, y.limbs)}).norm()
	case -1:
		return (&Int{neg: y.neg, limbs: absSub(y.limbs, x.limbs)}).norm()
	default:
		return &Int{}
	}
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(&Int{neg: !y.neg, limbs: y.limbs})
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	return (&Int{neg: x.neg != y.neg, limbs: absMul(x.limbs, y.limbs)}).norm()
}

// QuoRem returns the truncating quotient and remainder of x / y: the
// quotient rounds toward zero and the remainder takes the sign of x,
// so that q*y + r == x. Fails with ErrDivisionByZero when y is zero.
func (x *Int) QuoRem(y *Int) (*Int, *Int, error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	q, r := absQuoRem(x.limbs, y.limbs)
	quo := (&Int{neg: x.neg != y.neg, limbs: q}).norm()
	rem := (&Int{neg: x.neg, limbs: r}).norm()
	return quo, rem, nil
}

// Quo returns the truncating quotient x / y.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of the truncating division x / y.
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Pow returns x**e by repeated squaring. The exponent must be
// non-negative; Pow(x, 0) is 1 for every x, including Pow(0, 0).
func (x *Int) Pow(e *Int) (*Int, error) {
	if e.neg {
		return nil, ErrNegativeExponent
	}
	result := New(1)
	base := x
	for i, n := 0, bitLen(e.limbs); i < n; i++ {
		if bitAt(e.limbs, i) != 0 {
			result = result.Mul(base)
		}
		if i+1 < n {
			base = base.Mul(base)
		}
	}
	return result, nil
}

// Float64 returns the nearest float64 to x. Magnitudes beyond the
// float64 range yield +/-Inf.
func (x *Int) Float64() float64 {
	var f float64
	for i := len(x.limbs) - 1; i >= 0; i-- {
		f = f*(1<<32) + float64(x.limbs[i])
	}
	if x.neg {
		f = -f
	}
	return f
}

// Int64 returns the int64 value of x and whether it fits.
func (x *Int) Int64() (int64, bool) {
	if len(x.limbs) > 2 {
		return 0, false
	}
	var u uint64
	for i := len(x.limbs) - 1; i >= 0; i-- {
		u = u<<32 | uint64(x.limbs[i])
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		if u == 1<<63 {
			return math.MinInt64, true
		}
		return -int64(u), true
	}
	if u >= 1<<63 {
		return 0, false
	}
	return int64(u), true
}

// String renders x in canonical base-10 form: optional leading '-',
// no leading zero digits except for the literal value zero.
func (x *Int) String() string {
	if x.IsZero() {
		return "0"
	}
	// Peel 9 decimal digits at a time, least significant first.
	limbs := copyLimbs(x.limbs)
	var chunks []uint32
	for len(limbs) > 0 {
		var rem uint32
		limbs, rem = absDivModSmall(limbs, chunkBase)
		chunks = append(chunks, rem)
	}
	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	fmt.Fprintf(&b, "%d", chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%09d", chunks[i])
	}
	return b.String()
}

// ParseInt parses canonical base-10 text: an optional leading sign
// followed by one or more digits. Anything else fails with
// ErrMalformedInteger.
func ParseInt(s string) (*Int, error) {
	t := s
	neg := false
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}
	if len(t) == 0 {
		return nil, ErrMalformedInteger
	}
	var limbs []uint32
	for len(t) > 0 {
		n := len(t)
		if n > chunkDigits {
			n = chunkDigits
		}
		var chunk uint32
		for _, c := range []byte(t[:n]) {
			if c < '0' || c > '9' {
				return nil, ErrMalformedInteger
			}
			chunk = chunk*10 + uint32(c-'0')
		}
		limbs = absAddSmall(absMulSmall(limbs, pow10(n)), chunk)
		t = t[n:]
	}
	return (&Int{neg: neg, limbs: limbs}).norm(), nil
}

func pow10(n int) uint32 {
	p := uint32(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// ----- unsigned limb arithmetic -----

func trim(x []uint32) []uint32 {
	for len(x) > 0 && x[len(x)-1] == 0 {
		x = x[:len(x)-1]
	}
	return x
}

func copyLimbs(x []uint32) []uint32 {
	if len(x) == 0 {
		return nil
	}
	out := make([]uint32, len(x))
	copy(out, x)
	return out
}

func absCmp(x, y []uint32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func absAdd(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}
	out := make([]uint32, len(x)+1)
	var carry uint32
	for i := range x {
		yi := uint32(0)
		if i < len(y) {
			yi = y[i]
		}
		out[i], carry = bits.Add32(x[i], yi, carry)
	}
	out[len(x)] = carry
	return trim(out)
}

// absSub computes x - y; the caller guarantees x >= y.
func absSub(x, y []uint32) []uint32 {
	out := make([]uint32, len(x))
	var borrow uint32
	for i := range x {
		yi := uint32(0)
		if i < len(y) {
			yi = y[i]
		}
		out[i], borrow = bits.Sub32(x[i], yi, borrow)
	}
	return trim(out)
}

func absMul(x, y []uint32) []uint32 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	out := make([]uint32, len(x)+len(y))
	for i, xi := range x {
		var carry uint64
		for j, yj := range y {
			cur := uint64(out[i+j]) + uint64(xi)*uint64(yj) + carry
			out[i+j] = uint32(cur)
			carry = cur >> 32
		}
		out[i+len(y)] = uint32(carry)
	}
	return trim(out)
}

func absMulSmall(x []uint32, m uint32) []uint32 {
	out := make([]uint32, len(x)+1)
	var carry uint64
	for i, xi := range x {
		cur := uint64(xi)*uint64(m) + carry
		out[i] = uint32(cur)
		carry = cur >> 32
	}
	out[len(x)] = uint32(carry)
	return trim(out)
}

func absAddSmall(x []uint32, a uint32) []uint32 {
	return absAdd(x, []uint32{a})
}

// absDivModSmall divides x by a single limb d, returning the quotient
// limbs and the remainder.
func absDivModSmall(x []uint32, d uint32) ([]uint32, uint32) {
	out := make([]uint32, len(x))
	var rem uint32
	for i := len(x) - 1; i >= 0; i-- {
		out[i], rem = bits.Div32(rem, x[i], d)
	}
	return trim(out), rem
}

// absQuoRem is bitwise shift-subtract long division on magnitudes; the
// caller guarantees y is nonzero.
func absQuoRem(x, y []uint32) (q, r []uint32) {
	if absCmp(x, y) < 0 {
		return nil, copyLimbs(x)
	}
	q = make([]uint32, len(x))
	for i := bitLen(x) - 1; i >= 0; i-- {
		r = shl1(r)
		if bitAt(x, i) != 0 {
			if len(r) == 0 {
				r = []uint32{1}
			} else {
				r[0] |= 1
			}
		}
		if absCmp(r, y) >= 0 {
			r = absSub(r, y)
			q[i/32] |= 1 << (i % 32)
		}
	}
	return trim(q), trim(r)
}

func shl1(x []uint32) []uint32 {
	if len(x) == 0 {
		return nil
	}
	out := make([]uint32, len(x)+1)
	var carry uint32
	for i, xi := range x {
		out[i] = xi<<1 | carry
		carry = xi >> 31
	}
	out[len(x)] = carry
	return trim(out)
}

func bitLen(x []uint32) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*32 + bits.Len32(x[len(x)-1])
}

func bitAt(x []uint32, i int) uint32 {
	return x[i/32] >> (i % 32) & 1
}
