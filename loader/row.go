package loader

import (
	"strconv"
	"strings"

	"github.com/go-sif/arff"
	"github.com/go-sif/arff/errors"
	"github.com/go-sif/arff/schema"
)

const missingValue = "?"

// decodeRow parses a comma-separated data line into a row, according to a finalized schema
func decodeRow(s *schema.Schema, line string) ([]arff.Value, error) {
	fields := strings.Split(line, ",")
	attrs := s.Attributes()
	values := make([]arff.Value, 0, len(attrs))
	for i := 0; i < len(fields) && i < len(attrs); i++ {
		v, err := decodeField(strings.TrimSpace(fields[i]), attrs[i].Type())
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	// pairing above stops at the shorter side, so compare the raw field count
	if len(fields) != len(attrs) {
		return nil, errors.RowWidthError{DataLength: len(fields), SchemaLength: len(attrs)}
	}
	return values, nil
}

func decodeField(field string, attrType *arff.AttributeType) (arff.Value, error) {
	if field == missingValue {
		return arff.Missing(), nil
	}
	switch attrType.Kind() {
	case arff.NumericAttribute:
		fval, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return arff.Value{}, errors.NumericParseError{Field: field, Err: err}
		}
		return arff.Numeric(fval), nil
	default:
		code, ok := attrType.Code(field)
		if !ok {
			return arff.Value{}, errors.UnknownNominalValueError{Value: field}
		}
		return arff.Nominal(code), nil
	}
}
