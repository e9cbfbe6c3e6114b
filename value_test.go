package arff

import (
	"math"
	"testing"

	"github.com/go-sif/arff/errors"
	"github.com/stretchr/testify/require"
)

func TestValueVariants(t *testing.T) {
	f, err := Numeric(72).Float64()
	require.Nil(t, err)
	require.Equal(t, 72.0, f)
	_, err = Numeric(72).Code()
	require.ErrorAs(t, err, &errors.WrongKindError{})

	c, err := Nominal(1).Code()
	require.Nil(t, err)
	require.Equal(t, 1, c)
	_, err = Nominal(1).Float64()
	require.ErrorAs(t, err, &errors.WrongKindError{})

	_, err = Missing().Float64()
	require.ErrorAs(t, err, &errors.NilValueError{})
	_, err = Missing().Code()
	require.ErrorAs(t, err, &errors.NilValueError{})
}

func TestZeroValueIsMissing(t *testing.T) {
	var v Value
	require.True(t, v.IsMissing())
	require.Equal(t, Missing(), v)
	require.Equal(t, MissingKind, v.Kind())
}

func TestValueString(t *testing.T) {
	require.Equal(t, "72.5", Numeric(72.5).String())
	require.Equal(t, "#2", Nominal(2).String())
	require.Equal(t, "?", Missing().String())
}

func TestValueEqual(t *testing.T) {
	require.True(t, Numeric(72).Equal(Numeric(72)))
	require.True(t, Numeric(math.NaN()).Equal(Numeric(math.NaN())))
	require.False(t, Numeric(0).Equal(Numeric(math.Copysign(0, -1))))
	require.False(t, Numeric(1).Equal(Nominal(1)))
	require.True(t, Nominal(1).Equal(Nominal(1)))
	require.False(t, Nominal(1).Equal(Nominal(2)))
	require.True(t, Missing().Equal(Missing()))
	require.False(t, Missing().Equal(Numeric(0)))
}

func TestNominalTypeRejectsEmptyAndDuplicates(t *testing.T) {
	_, err := NominalType(nil)
	require.ErrorAs(t, err, &errors.IncompleteNominalTypeError{})
	_, err = NominalType([]string{"a", "b", "a"})
	var dup errors.DuplicateNominalValueError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "a", dup.Value)
}

func TestAttributeTypeAccepts(t *testing.T) {
	nominal, err := NominalType([]string{"sunny", "rainy"})
	require.Nil(t, err)
	require.Nil(t, nominal.Accepts(Nominal(1)))
	require.Nil(t, nominal.Accepts(Missing()))
	require.NotNil(t, nominal.Accepts(Nominal(2)))
	require.NotNil(t, nominal.Accepts(Nominal(-1)))
	require.NotNil(t, nominal.Accepts(Numeric(1)))

	numeric := NumericType()
	require.Nil(t, numeric.Accepts(Numeric(3.5)))
	require.Nil(t, numeric.Accepts(Missing()))
	require.NotNil(t, numeric.Accepts(Nominal(0)))
}

func TestAttributeTypeValuesAreCopied(t *testing.T) {
	nominal, err := NominalType([]string{"sunny", "rainy"})
	require.Nil(t, err)
	values := nominal.Values()
	values[0] = "overcast"
	name, ok := nominal.ValueName(0)
	require.True(t, ok)
	require.Equal(t, "sunny", name)
	_, ok = nominal.ValueName(2)
	require.False(t, ok)
}
