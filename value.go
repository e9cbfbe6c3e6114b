package arff

import (
	"math"
	"strconv"

	"github.com/go-sif/arff/errors"
)

// ValueKind identifies which variant a Value holds
type ValueKind uint8

const (
	// MissingKind marks an absent observation, written as ? in a data row
	MissingKind ValueKind = iota
	// NumericKind marks a floating-point observation
	NumericKind
	// NominalKind marks an observation holding the code of a declared nominal value
	NominalKind
)

// String returns a textual representation of this ValueKind
func (k ValueKind) String() string {
	switch k {
	case NumericKind:
		return "numeric"
	case NominalKind:
		return "nominal"
	default:
		return "missing"
	}
}

// Value is a single field of a Row. The zero Value is Missing.
type Value struct {
	kind ValueKind
	num  float64
	code int
}

// Numeric creates a numeric Value
func Numeric(v float64) Value {
	return Value{kind: NumericKind, num: v}
}

// Nominal creates a nominal Value from the code of a declared value
func Nominal(code int) Value {
	return Value{kind: NominalKind, code: code}
}

// Missing creates a Missing Value
func Missing() Value {
	return Value{}
}

// Kind returns the variant held by this Value
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsMissing returns true iff this Value is Missing
func (v Value) IsMissing() bool {
	return v.kind == MissingKind
}

// Float64 returns the number held by a numeric Value
func (v Value) Float64() (float64, error) {
	switch v.kind {
	case NumericKind:
		return v.num, nil
	case MissingKind:
		return 0, errors.NilValueError{}
	default:
		return 0, errors.WrongKindError{Want: NumericKind.String(), Have: v.kind.String()}
	}
}

// Code returns the nominal code held by a nominal Value
func (v Value) Code() (int, error) {
	switch v.kind {
	case NominalKind:
		return v.code, nil
	case MissingKind:
		return 0, errors.NilValueError{}
	default:
		return 0, errors.WrongKindError{Want: NominalKind.String(), Have: v.kind.String()}
	}
}

// Equal returns true iff this and another Value hold the same variant and
// payload. Numbers are compared bitwise, so NaN equals NaN and 0 differs from -0.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NumericKind:
		return math.Float64bits(v.num) == math.Float64bits(other.num)
	case NominalKind:
		return v.code == other.code
	default:
		return true
	}
}

// String returns a textual representation of this Value
func (v Value) String() string {
	switch v.kind {
	case NumericKind:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case NominalKind:
		return "#" + strconv.Itoa(v.code)
	default:
		return "?"
	}
}
