package peano

import (
	"github.com/pkg/errors"
)

// Int builds the canonical numeral for n: Zero, n Incrs, or -n Substrs.
func Int(n int) Expr {
	var e Expr = &Zero{}
	for ; n > 0; n-- {
		e = &Incr{Inner: e}
	}
	for ; n < 0; n++ {
		e = &Substr{Inner: e}
	}
	return e
}

// ToInt counts the layers of a uniform Incr or Substr chain.
func ToInt(e Expr) (int, error) {
	var n, step int
	for {
		switch x := e.(type) {
		case *Zero:
			return n, nil
		case *Incr:
			if step < 0 {
				return 0, errors.Wrap(ErrMalformedNumeral, "Incr inside Substr chain")
			}
			step = 1
			n++
			e = x.Inner
		case *Substr:
			if step > 0 {
				return 0, errors.Wrap(ErrMalformedNumeral, "Substr inside Incr chain")
			}
			step = -1
			n--
			e = x.Inner
		case nil:
			return 0, errors.Wrap(ErrMalformedNumeral, "nil expression")
		default:
			return 0, errors.Wrapf(ErrMalformedNumeral, "%T in numeral chain", e)
		}
	}
}

// True is the boolean numeral 1.
func True() Expr { return &Incr{Inner: &Zero{}} }

// False is the boolean numeral 0.
func False() Expr { return &Zero{} }

// Bool converts a Go bool to True or False.
func Bool(b bool) Expr {
	if b {
		return True()
	}
	return False()
}

// Truthy applies the If rule: everything except Zero selects the then
// branch, including negative numerals.
func Truthy(v Expr) bool {
	_, isZero := v.(*Zero)
	return !isZero
}
