package units

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// conversionScale bounds the digits kept when a conversion ratio does not
// terminate (e.g. seconds into Julian years). Terminating ratios are exact
// regardless of this value.
const conversionScale = 28

type definition struct {
	dimension Dimension
	factor    decimal.Decimal // multiples of the dimension's base unit
}

// Registry is the built-in Converter. It maps unit symbols to exact decimal
// factors relative to a base unit per dimension (metre, second, gram).
type Registry struct {
	defs map[string]definition
}

// Option customises a Registry during construction.
type Option func(*Registry)

// WithUnit registers an additional unit symbol. The factor string must parse
// as an exact decimal multiple of the dimension's base unit.
func WithUnit(symbol string, dim Dimension, factor string) Option {
	return func(r *Registry) {
		r.defs[symbol] = definition{dimension: dim, factor: decimal.RequireFromString(factor)}
	}
}

// NewRegistry constructs the default unit registry. SI prefixes are applied
// to the metre, second, and gram; common calendar and imperial units are
// registered with their exact decimal definitions.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{defs: make(map[string]definition)}
	r.registerDefaults()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var _ Converter = (*Registry)(nil)

// siPrefixes maps prefix symbols to their power-of-ten factors.
var siPrefixes = map[string]string{
	"Q":  "1e30",
	"R":  "1e27",
	"Y":  "1e24",
	"Z":  "1e21",
	"E":  "1e18",
	"P":  "1e15",
	"T":  "1e12",
	"G":  "1e9",
	"M":  "1e6",
	"k":  "1e3",
	"h":  "1e2",
	"da": "1e1",
	"d":  "1e-1",
	"c":  "1e-2",
	"m":  "1e-3",
	"u":  "1e-6",
	"µ":  "1e-6",
	"n":  "1e-9",
	"p":  "1e-12",
	"f":  "1e-15",
	"a":  "1e-18",
	"z":  "1e-21",
	"y":  "1e-24",
	"r":  "1e-27",
	"q":  "1e-30",
}

func (r *Registry) registerDefaults() {
	r.registerPrefixed("m", DimensionLength, "1")
	r.registerPrefixed("s", DimensionTime, "1")
	r.registerPrefixed("g", DimensionMass, "1")

	for symbol, def := range map[string]struct {
		dim    Dimension
		factor string
	}{
		// lengths
		"angstrom": {DimensionLength, "1e-10"},
		"in":       {DimensionLength, "0.0254"},
		"ft":       {DimensionLength, "0.3048"},
		"yd":       {DimensionLength, "0.9144"},
		"mi":       {DimensionLength, "1609.344"},
		"au":       {DimensionLength, "149597870700"},
		"ly":       {DimensionLength, "9460730472580800"},
		// times; yr is the Julian year
		"min": {DimensionTime, "60"},
		"hr":  {DimensionTime, "3600"},
		"day": {DimensionTime, "86400"},
		"wk":  {DimensionTime, "604800"},
		"yr":  {DimensionTime, "31557600"},
		// masses
		"t":  {DimensionMass, "1e6"},
		"lb": {DimensionMass, "453.59237"},
		"oz": {DimensionMass, "28.349523125"},
	} {
		r.defs[symbol] = definition{dimension: def.dim, factor: decimal.RequireFromString(def.factor)}
	}
}

func (r *Registry) registerPrefixed(base string, dim Dimension, factor string) {
	baseFactor := decimal.RequireFromString(factor)
	r.defs[base] = definition{dimension: dim, factor: baseFactor}
	for prefix, scale := range siPrefixes {
		r.defs[prefix+base] = definition{
			dimension: dim,
			factor:    baseFactor.Mul(decimal.RequireFromString(scale)),
		}
	}
}

// Resolve returns the dimension measured by symbol.
func (r *Registry) Resolve(symbol string) (Dimension, error) {
	def, ok := r.lookup(symbol)
	if !ok {
		return "", &UnknownUnitError{Symbol: symbol}
	}
	return def.dimension, nil
}

// Convert re-expresses value from one unit in another unit of the same
// dimension. Both symbols must resolve, and their dimensions must agree.
func (r *Registry) Convert(value decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromDef, ok := r.lookup(from)
	if !ok {
		return decimal.Decimal{}, &UnknownUnitError{Symbol: from}
	}
	toDef, ok := r.lookup(to)
	if !ok {
		return decimal.Decimal{}, &UnknownUnitError{Symbol: to}
	}
	if fromDef.dimension != toDef.dimension {
		return decimal.Decimal{}, &IncompatibleUnitError{
			From:          from,
			To:            to,
			FromDimension: fromDef.dimension,
			ToDimension:   toDef.dimension,
		}
	}
	return divide(value.Mul(fromDef.factor), toDef.factor), nil
}

// divide computes v / f keeping conversionScale significant digits rather
// than decimal places, so tiny magnitudes (1e-35 metres) survive conversion.
// The quotient is exact whenever the ratio terminates within that scale.
func divide(v, f decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return v
	}
	order := int32(v.NumDigits()) - 1 + v.Exponent()
	return v.Shift(-order).DivRound(f, conversionScale).Shift(order)
}

func (r *Registry) lookup(symbol string) (definition, bool) {
	def, ok := r.defs[strings.TrimSpace(symbol)]
	return def, ok
}

// MustConvert is a convenience for tests and static wiring; it panics when
// Convert fails.
func (r *Registry) MustConvert(value decimal.Decimal, from, to string) decimal.Decimal {
	out, err := r.Convert(value, from, to)
	if err != nil {
		panic(fmt.Sprintf("units: %v", err))
	}
	return out
}
