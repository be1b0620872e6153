// Package fixed implements the deterministic fixed-point arithmetic used by
// every physics quantity in the game. Values carry 8 fractional bits.
package fixed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Shift is the number of fractional bits.
	Shift = 8
	// One is the raw representation of 1.0.
	One = 1 << Shift
)

var ErrBadNumber = errors.New("fixed: malformed number")

// Num is a signed fixed-point number with Shift fractional bits.
// Addition, subtraction and negation use the native operators.
type Num int32

// FromInt converts an integer to a Num.
func FromInt(i int) Num {
	return Num(int32(i) << Shift)
}

// FromRaw wraps a raw fixed-point value.
func FromRaw(raw int32) Num {
	return Num(raw)
}

// Ratio returns num/den computed the same way as FromInt(num).DivInt(den).
func Ratio(num, den int) Num {
	return FromInt(num).DivInt(den)
}

// Raw returns the underlying representation.
func (n Num) Raw() int32 {
	return int32(n)
}

// Mul multiplies two fixed-point numbers.
func (n Num) Mul(o Num) Num {
	return Num((int64(n) * int64(o)) >> Shift)
}

// Div divides two fixed-point numbers, truncating toward zero.
func (n Num) Div(o Num) Num {
	return Num((int64(n) << Shift) / int64(o))
}

// MulInt multiplies by an integer.
func (n Num) MulInt(i int) Num {
	return Num(int32(n) * int32(i))
}

// DivInt divides the raw value by an integer, truncating toward zero.
func (n Num) DivInt(i int) Num {
	return Num(int32(n) / int32(i))
}

// Rem returns the remainder of the raw value modulo FromInt(i). The sign
// follows the dividend.
func (n Num) Rem(i int) Num {
	return Num(int32(n) % int32(FromInt(i)))
}

// Floor rounds toward negative infinity.
func (n Num) Floor() int {
	return int(int32(n) >> Shift)
}

func (n Num) Abs() Num {
	if n < 0 {
		return -n
	}
	return n
}

// Signum returns -1, 0 or 1.
func (n Num) Signum() int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Sqrt returns the square root. Negative inputs yield zero.
func (n Num) Sqrt() Num {
	if n <= 0 {
		return 0
	}
	return Num(isqrt(uint32(n)) << (Shift / 2))
}

func isqrt(v uint32) uint32 {
	var res uint32
	bit := uint32(1) << 30
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= res+bit {
			v -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

func (n Num) String() string {
	whole := int32(n) >> Shift
	frac := int32(n) & (One - 1)
	if frac == 0 {
		return strconv.Itoa(int(whole))
	}
	return fmt.Sprintf("%d+%d/%d", whole, frac, One)
}

// Parse reads an integer ("3", "-2") or a fraction ("1/16", "-1/2"). A
// fraction is evaluated as FromInt(a).DivInt(b).
func Parse(s string) (Num, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadNumber)
	}
	numStr, denStr, isFrac := strings.Cut(s, "/")
	num, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	if !isFrac {
		return FromInt(num), nil
	}
	den, err := strconv.Atoi(strings.TrimSpace(denStr))
	if err != nil || den == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return Ratio(num, den), nil
}
