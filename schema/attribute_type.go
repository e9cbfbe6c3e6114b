package schema

import (
	"strings"

	"github.com/go-sif/arff"
	"github.com/go-sif/arff/errors"
	"github.com/go-sif/arff/internal/quoted"
)

var numericKeywords = []string{"real", "continuous", "integer"}

// ParseAttributeType classifies the type part of an @attribute declaration.
// The numeric keywords are matched case-insensitively; anything else must
// be a brace-delimited list of (optionally quoted) nominal values.
func ParseAttributeType(typeStr string) (*arff.AttributeType, error) {
	for _, kw := range numericKeywords {
		if strings.EqualFold(typeStr, kw) {
			return arff.NumericType(), nil
		}
	}
	if len(typeStr) < 2 || !strings.HasPrefix(typeStr, "{") || !strings.HasSuffix(typeStr, "}") {
		return nil, errors.InvalidAttributeTypeError{Type: typeStr}
	}
	values := quoted.SplitTrimmed(typeStr[1:len(typeStr)-1], ',').All()
	return arff.NominalType(values)
}
