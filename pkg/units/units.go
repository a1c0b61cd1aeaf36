// Package units provides symbol resolution and magnitude conversion between
// physical units of the same dimension. Conversions are carried out on exact
// decimal values so that round-trips between related units introduce no
// binary floating point residue.
package units

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Dimension identifies the physical dimension a unit measures.
type Dimension string

const (
	DimensionLength Dimension = "length"
	DimensionTime   Dimension = "time"
	DimensionMass   Dimension = "mass"
)

// Converter resolves unit symbols and converts magnitudes between units of
// the same dimension. Implementations must report unknown symbols and
// dimension mismatches as distinct error kinds so callers can branch on them.
type Converter interface {
	Resolve(symbol string) (Dimension, error)
	Convert(value decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// UnknownUnitError reports a symbol the converter does not recognise.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("units: unsupported unit %q", e.Symbol)
}

// IncompatibleUnitError reports a conversion between units of different
// dimensions, such as a time unit into a length target.
type IncompatibleUnitError struct {
	From          string
	To            string
	FromDimension Dimension
	ToDimension   Dimension
}

func (e *IncompatibleUnitError) Error() string {
	return fmt.Sprintf("units: cannot convert %q (%s) to %q (%s)",
		e.From, e.FromDimension, e.To, e.ToDimension)
}
