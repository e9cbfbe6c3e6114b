package loader

import (
	"strconv"
	"testing"

	"github.com/go-sif/arff"
	"github.com/go-sif/arff/errors"
	"github.com/go-sif/arff/schema"
	"github.com/stretchr/testify/require"
)

func createWeatherSchema(t *testing.T) *schema.Schema {
	outlook, err := arff.NominalType([]string{"sunny", "rainy"})
	require.Nil(t, err)
	s := schema.CreateSchema()
	_, err = s.CreateAttribute("temperature", arff.NumericType())
	require.Nil(t, err)
	_, err = s.CreateAttribute("outlook", outlook)
	require.Nil(t, err)
	s.Finalize()
	return s
}

func TestDecodeRow(t *testing.T) {
	s := createWeatherSchema(t)
	row, err := decodeRow(s, "72,sunny")
	require.Nil(t, err)
	require.Equal(t, []arff.Value{arff.Numeric(72.0), arff.Nominal(0)}, row)

	row, err = decodeRow(s, "?,rainy")
	require.Nil(t, err)
	require.Equal(t, []arff.Value{arff.Missing(), arff.Nominal(1)}, row)

	row, err = decodeRow(s, " -1.5e2 , ? ")
	require.Nil(t, err)
	require.Equal(t, []arff.Value{arff.Numeric(-150), arff.Missing()}, row)
}

func TestDecodeRowUnknownNominal(t *testing.T) {
	s := createWeatherSchema(t)
	_, err := decodeRow(s, "72,overcast")
	var unknown errors.UnknownNominalValueError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "overcast", unknown.Value)
	require.Contains(t, err.Error(), "overcast")

	_, err = decodeRow(s, "72,Sunny")
	require.ErrorAs(t, err, &unknown)
}

func TestDecodeRowWidth(t *testing.T) {
	s := createWeatherSchema(t)
	_, err := decodeRow(s, "72,sunny,extra")
	var widthErr errors.RowWidthError
	require.ErrorAs(t, err, &widthErr)
	require.Equal(t, 3, widthErr.DataLength)
	require.Equal(t, 2, widthErr.SchemaLength)
	require.Equal(t, "data length (3) does not match schema length (2)", err.Error())

	_, err = decodeRow(s, "72")
	require.ErrorAs(t, err, &widthErr)
	require.Equal(t, 1, widthErr.DataLength)
}

func TestDecodeRowBadNumber(t *testing.T) {
	s := createWeatherSchema(t)
	_, err := decodeRow(s, "warm,sunny")
	var parseErr errors.NumericParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "warm", parseErr.Field)
	require.Contains(t, err.Error(), "warm")
	require.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = decodeRow(s, ",sunny")
	require.ErrorAs(t, err, &parseErr)
}
