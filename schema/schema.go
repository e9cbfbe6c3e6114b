package schema

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/arff"
	"github.com/go-sif/arff/errors"
)

// Schema is the ordered list of attributes of a Relation. Attributes are
// appended while the header is parsed; once Finalize is called the Schema no
// longer changes. Attribute names need not be unique.
type Schema struct {
	attributes []arff.AttributeFormat
	finalized  bool
}

// CreateSchema is a factory for Schemas
func CreateSchema() *Schema {
	return &Schema{
		attributes: make([]arff.AttributeFormat, 0),
	}
}

// CreateAttribute appends a new attribute to the Schema
func (s *Schema) CreateAttribute(name string, attrType *arff.AttributeType) (*Schema, error) {
	if s.finalized {
		return nil, errors.SchemaFinalizedError{Name: name}
	}
	s.attributes = append(s.attributes, arff.CreateAttributeFormat(name, attrType))
	return s, nil
}

// Finalize marks the end of the header. No attributes may be added afterwards.
func (s *Schema) Finalize() {
	s.finalized = true
}

// IsFinalized returns true iff Finalize has been called
func (s *Schema) IsFinalized() bool {
	return s.finalized
}

// NumAttributes returns the number of attributes in this Schema
func (s *Schema) NumAttributes() int {
	return len(s.attributes)
}

// Attribute returns the attribute at the given index
func (s *Schema) Attribute(idx int) (attr arff.AttributeFormat, ok bool) {
	if idx < 0 || idx >= len(s.attributes) {
		return
	}
	return s.attributes[idx], true
}

// Attributes returns a copy of the attributes, in column order
func (s *Schema) Attributes() []arff.AttributeFormat {
	res := make([]arff.AttributeFormat, len(s.attributes))
	copy(res, s.attributes)
	return res
}

// AttributeNames returns the names of the attributes, in column order
func (s *Schema) AttributeNames() []string {
	names := make([]string, len(s.attributes))
	for i, attr := range s.attributes {
		names[i] = attr.Name()
	}
	return names
}

// AttributeIndex returns the index of the first attribute with the given name
func (s *Schema) AttributeIndex(name string) (int, bool) {
	for i, attr := range s.attributes {
		if attr.Name() == name {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a copy of this Schema. Attribute types are shared, as they are immutable.
func (s *Schema) Clone() *Schema {
	return &Schema{attributes: s.Attributes(), finalized: s.finalized}
}

// Equals returns nil iff this and another Schema declare the same attributes in the same order
func (s *Schema) Equals(otherSchema *Schema) error {
	if s.NumAttributes() != otherSchema.NumAttributes() {
		return fmt.Errorf("Schemas have unequal sizes")
	}
	for i, attr := range s.attributes {
		other := otherSchema.attributes[i]
		if attr.Name() != other.Name() {
			return fmt.Errorf("Attribute %d names do not match: %s != %s", i, attr.Name(), other.Name())
		}
		if attr.Type().Kind() != other.Type().Kind() {
			return fmt.Errorf("Attribute %s types do not match", attr.Name())
		}
		values, otherValues := attr.Type().Values(), other.Type().Values()
		if len(values) != len(otherValues) {
			return fmt.Errorf("Attribute %s nominal values do not match", attr.Name())
		}
		for j := range values {
			if values[j] != otherValues[j] {
				return fmt.Errorf("Attribute %s nominal values do not match", attr.Name())
			}
		}
	}
	return nil
}

// Fingerprint returns a hash of the attribute names and types
func (s *Schema) Fingerprint() uint64 {
	hasher := xxhash.New()
	s.WriteFingerprint(hasher)
	return hasher.Sum64()
}

// WriteFingerprint feeds the attribute names and types into a running hash
func (s *Schema) WriteFingerprint(hasher *xxhash.Digest) {
	var buf [8]byte
	writeUint64(hasher, buf[:], uint64(len(s.attributes)))
	for _, attr := range s.attributes {
		writeString(hasher, buf[:], attr.Name())
		writeUint64(hasher, buf[:], uint64(attr.Type().Kind()))
		values := attr.Type().Values()
		writeUint64(hasher, buf[:], uint64(len(values)))
		for _, v := range values {
			writeString(hasher, buf[:], v)
		}
	}
}

// WriteValue feeds a Value into a running hash
func WriteValue(hasher *xxhash.Digest, v arff.Value) {
	var buf [8]byte
	writeUint64(hasher, buf[:], uint64(v.Kind()))
	switch v.Kind() {
	case arff.NumericKind:
		f, _ := v.Float64()
		writeUint64(hasher, buf[:], math.Float64bits(f))
	case arff.NominalKind:
		c, _ := v.Code()
		writeUint64(hasher, buf[:], uint64(c))
	}
}

// strings are length-prefixed so that adjacent fields cannot run together
func writeString(hasher *xxhash.Digest, buf []byte, str string) {
	writeUint64(hasher, buf, uint64(len(str)))
	hasher.WriteString(str)
}

func writeUint64(hasher *xxhash.Digest, buf []byte, v uint64) {
	binary.LittleEndian.PutUint64(buf, v)
	hasher.Write(buf[:8])
}
