// Package sci derives the normalized scientific-notation form of an exact
// decimal magnitude: a mantissa rounded to two fractional digits and its
// power-of-ten exponent.
package sci

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Notation is the display form of a magnitude: Mantissa is a fixed
// two-decimal string (signed for negative values) and Exponent the matching
// power of ten. For every nonzero input 1.00 <= |mantissa| < 10.00.
type Notation struct {
	Mantissa string
	Exponent int
}

// FormatError reports a magnitude that cannot be expressed in scientific
// notation because it is not a finite number.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("sci: value %q must be a finite number", e.Value)
}

var ten = decimal.RequireFromString("10.00")

// FromDecimal converts value to scientific notation. Zero maps to mantissa
// "0.00" with exponent 0. Rounding is half away from zero on the exact
// decimal; a mantissa that rounds to 10.00 rolls over to 1.00 with the
// exponent incremented.
func FromDecimal(value decimal.Decimal) Notation {
	if value.IsZero() {
		return Notation{Mantissa: "0.00", Exponent: 0}
	}

	abs := value.Abs()
	exponent := orderOfMagnitude(abs)
	mantissa := abs.Shift(int32(-exponent)).Round(2)
	if mantissa.Equal(ten) {
		mantissa = decimal.NewFromInt(1)
		exponent++
	}

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
	}
	return Notation{Mantissa: sign + mantissa.StringFixed(2), Exponent: exponent}
}

// DecimalFromFloat builds an exact decimal from a binary float through its
// shortest decimal string representation, rejecting non-finite inputs. It is
// the only sanctioned float entry point into the pipeline.
func DecimalFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, &FormatError{Value: strconv.FormatFloat(f, 'g', -1, 64)}
	}
	return decimal.NewFromString(strconv.FormatFloat(f, 'g', -1, 64))
}

// orderOfMagnitude returns the exponent of abs in normalized scientific
// form, i.e. the power of ten that scales abs into [1, 10).
func orderOfMagnitude(abs decimal.Decimal) int {
	return abs.NumDigits() - 1 + int(abs.Exponent())
}
