package units_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-magnitude/pkg/units"
)

func TestRegistryResolve(t *testing.T) {
	registry := units.NewRegistry()

	dim, err := registry.Resolve("km")
	require.NoError(t, err)
	assert.Equal(t, units.DimensionLength, dim)

	dim, err = registry.Resolve("yr")
	require.NoError(t, err)
	assert.Equal(t, units.DimensionTime, dim)

	_, err = registry.Resolve("bananas")
	var unknown *units.UnknownUnitError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bananas", unknown.Symbol)
}

func TestRegistryConvert_SubUnitIsExact(t *testing.T) {
	registry := units.NewRegistry()

	got, err := registry.Convert(decimal.RequireFromString("1000"), "mm", "m")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)), "1000 mm should be exactly 1 m, got %s", got)
}

func TestRegistryConvert_NoDriftOnRoundTrips(t *testing.T) {
	registry := units.NewRegistry()

	value := decimal.RequireFromString("0.1")
	for i := 0; i < 25; i++ {
		up, err := registry.Convert(value, "m", "mm")
		require.NoError(t, err)
		down, err := registry.Convert(up, "mm", "m")
		require.NoError(t, err)
		value = down
	}
	assert.True(t, value.Equal(decimal.RequireFromString("0.1")),
		"repeated conversions of 0.1 drifted to %s", value)
}

func TestRegistryConvert_JulianYear(t *testing.T) {
	registry := units.NewRegistry()

	got, err := registry.Convert(decimal.NewFromInt(1), "yr", "s")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(31557600)), "1 yr = %s s", got)
}

func TestRegistryConvert_TinyMagnitudesSurvive(t *testing.T) {
	registry := units.NewRegistry()

	planck := decimal.RequireFromString("1.616255e-35")
	got, err := registry.Convert(planck, "m", "m")
	require.NoError(t, err)
	assert.True(t, got.Equal(planck), "identity conversion changed %s to %s", planck, got)

	inMM, err := registry.Convert(planck, "m", "mm")
	require.NoError(t, err)
	assert.True(t, inMM.Equal(decimal.RequireFromString("1.616255e-32")), "got %s", inMM)
}

func TestRegistryConvert_IncompatibleDimensions(t *testing.T) {
	registry := units.NewRegistry()

	_, err := registry.Convert(decimal.NewFromInt(1), "s", "m")
	var incompatible *units.IncompatibleUnitError
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, "s", incompatible.From)
	assert.Equal(t, "m", incompatible.To)
	assert.Equal(t, units.DimensionTime, incompatible.FromDimension)
	assert.Equal(t, units.DimensionLength, incompatible.ToDimension)

	// An unknown symbol must stay an unknown-symbol error, never a
	// dimensionality one.
	_, err = registry.Convert(decimal.NewFromInt(1), "bananas", "m")
	var unknown *units.UnknownUnitError
	assert.True(t, errors.As(err, &unknown))
}

func TestRegistryConvert_Prefixes(t *testing.T) {
	registry := units.NewRegistry()

	cases := []struct {
		value string
		from  string
		to    string
		want  string
	}{
		{"1", "km", "m", "1000"},
		{"70", "um", "m", "0.00007"},
		{"70", "µm", "m", "0.00007"},
		{"1.9", "fs", "s", "1.9e-15"},
		{"2", "kg", "g", "2000"},
	}
	for _, tc := range cases {
		got, err := registry.Convert(decimal.RequireFromString(tc.value), tc.from, tc.to)
		require.NoError(t, err, "%s %s -> %s", tc.value, tc.from, tc.to)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"%s %s -> %s = %s, want %s", tc.value, tc.from, tc.to, got, tc.want)
	}
}

func TestRegistryWithUnit(t *testing.T) {
	registry := units.NewRegistry(
		units.WithUnit("fortnight", units.DimensionTime, "1209600"),
	)

	got, err := registry.Convert(decimal.NewFromInt(1), "fortnight", "day")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(14)), "1 fortnight = %s day", got)
}
