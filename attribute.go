package arff

import (
	"fmt"

	"github.com/go-sif/arff/errors"
)

// AttributeKind identifies which variant an AttributeType holds
type AttributeKind uint8

const (
	// NumericAttribute columns hold floating-point values. The real, integer and continuous keywords all map here.
	NumericAttribute AttributeKind = iota
	// NominalAttribute columns hold one of a fixed, declared set of named values
	NominalAttribute
)

// String returns a textual representation of this AttributeKind
func (k AttributeKind) String() string {
	if k == NominalAttribute {
		return "nominal"
	}
	return "numeric"
}

// AttributeType is the type of a column. Nominal types carry their declared
// values in declaration order (which defines each value's code) and a reverse
// index from value name to code.
type AttributeType struct {
	kind   AttributeKind
	values []string
	index  map[string]int
}

// NumericType returns a numeric AttributeType
func NumericType() *AttributeType {
	return &AttributeType{kind: NumericAttribute}
}

// NominalType returns a nominal AttributeType over the given values. Codes
// are assigned by position. Empty or duplicate value lists are rejected.
func NominalType(values []string) (*AttributeType, error) {
	if len(values) == 0 {
		return nil, errors.IncompleteNominalTypeError{}
	}
	t := &AttributeType{
		kind:   NominalAttribute,
		values: make([]string, 0, len(values)),
		index:  make(map[string]int, len(values)),
	}
	for _, v := range values {
		if _, exists := t.index[v]; exists {
			return nil, errors.DuplicateNominalValueError{Value: v}
		}
		t.index[v] = len(t.values)
		t.values = append(t.values, v)
	}
	return t, nil
}

// Kind returns the variant of this AttributeType
func (t *AttributeType) Kind() AttributeKind {
	return t.kind
}

// IsNominal returns true iff this is a nominal AttributeType
func (t *AttributeType) IsNominal() bool {
	return t.kind == NominalAttribute
}

// NumValues returns the number of declared nominal values (0 for numeric types)
func (t *AttributeType) NumValues() int {
	return len(t.values)
}

// Values returns a copy of the declared nominal values, in code order
func (t *AttributeType) Values() []string {
	res := make([]string, len(t.values))
	copy(res, t.values)
	return res
}

// Code returns the code of a declared nominal value. Matching is exact and case-sensitive.
func (t *AttributeType) Code(name string) (int, bool) {
	code, ok := t.index[name]
	return code, ok
}

// ValueName returns the declared nominal value with the given code
func (t *AttributeType) ValueName(code int) (string, bool) {
	if code < 0 || code >= len(t.values) {
		return "", false
	}
	return t.values[code], true
}

// Accepts checks that a Value may be stored in a column of this type
func (t *AttributeType) Accepts(v Value) error {
	switch v.Kind() {
	case MissingKind:
		return nil
	case NumericKind:
		if t.kind != NumericAttribute {
			return fmt.Errorf("numeric value in %s column", t.kind)
		}
		return nil
	default:
		if t.kind != NominalAttribute {
			return fmt.Errorf("nominal value in %s column", t.kind)
		}
		if _, ok := t.ValueName(v.code); !ok {
			return fmt.Errorf("nominal code %d out of range [0, %d)", v.code, len(t.values))
		}
		return nil
	}
}

// String returns a textual representation of this AttributeType
func (t *AttributeType) String() string {
	if t.kind == NominalAttribute {
		return fmt.Sprintf("nominal%v", t.values)
	}
	return "numeric"
}

// AttributeFormat is one named, typed column of a Relation
type AttributeFormat struct {
	name     string
	attrType *AttributeType
}

// CreateAttributeFormat is a factory for AttributeFormats
func CreateAttributeFormat(name string, attrType *AttributeType) AttributeFormat {
	return AttributeFormat{name: name, attrType: attrType}
}

// Name returns the name of this attribute
func (a AttributeFormat) Name() string {
	return a.name
}

// Type returns the AttributeType of this attribute
func (a AttributeFormat) Type() *AttributeType {
	return a.attrType
}
