package errors

import (
	"fmt"
)

// NilValueError occurs when a typed accessor is used on a Missing Value
type NilValueError struct{}

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return "Value is missing"
}

// WrongKindError occurs when a Value is read as a kind it does not hold
type WrongKindError struct {
	Want string
	Have string
}

// Error returns a textual representation of this WrongKindError
func (e WrongKindError) Error() string {
	return fmt.Sprintf("Value is %s, not %s", e.Have, e.Want)
}

// InvalidAttributeTypeError occurs when an attribute type is neither a numeric keyword nor a brace-delimited set
type InvalidAttributeTypeError struct{ Type string }

// Error returns a textual representation of this InvalidAttributeTypeError
func (e InvalidAttributeTypeError) Error() string {
	return fmt.Sprintf("Invalid attribute type: %s", e.Type)
}

// IncompleteNominalTypeError occurs when a nominal attribute type declares no values
type IncompleteNominalTypeError struct{}

// Error returns a textual representation of this IncompleteNominalTypeError
func (e IncompleteNominalTypeError) Error() string {
	return "Incomplete nominal attribute type"
}

// DuplicateNominalValueError occurs when a nominal attribute type declares the same value twice
type DuplicateNominalValueError struct{ Value string }

// Error returns a textual representation of this DuplicateNominalValueError
func (e DuplicateNominalValueError) Error() string {
	return fmt.Sprintf("Duplicate nominal value %s", e.Value)
}

// MissingArgumentError occurs when a header directive is given without its name
type MissingArgumentError struct{ Directive string }

// Error returns a textual representation of this MissingArgumentError
func (e MissingArgumentError) Error() string {
	switch e.Directive {
	case "@relation":
		return "No relation name given"
	case "@attribute":
		return "No attribute name given"
	default:
		return fmt.Sprintf("No argument given to %s", e.Directive)
	}
}

// UnrecognizedTokenError occurs when a header line starts with an unknown directive
type UnrecognizedTokenError struct{ Token string }

// Error returns a textual representation of this UnrecognizedTokenError
func (e UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("Unrecognized token %s in header", e.Token)
}

// MissingDataSectionError occurs when the input ends before the @data marker
type MissingDataSectionError struct{}

// Error returns a textual representation of this MissingDataSectionError
func (e MissingDataSectionError) Error() string {
	return "Input ended before @data"
}

// NumericParseError occurs when a field of a numeric column is not a float literal
type NumericParseError struct {
	Field string
	Err   error
}

// Error returns a textual representation of this NumericParseError
func (e NumericParseError) Error() string {
	return fmt.Sprintf("Could not parse %s as a number: %v", e.Field, e.Err)
}

// Unwrap returns the underlying strconv error
func (e NumericParseError) Unwrap() error {
	return e.Err
}

// UnknownNominalValueError occurs when a field of a nominal column is not a declared value
type UnknownNominalValueError struct{ Value string }

// Error returns a textual representation of this UnknownNominalValueError
func (e UnknownNominalValueError) Error() string {
	return fmt.Sprintf("unrecognized value `%s`", e.Value)
}

// RowWidthError occurs when a Row's width does not match the Schema length
type RowWidthError struct {
	DataLength   int
	SchemaLength int
}

// Error returns a textual representation of this RowWidthError
func (e RowWidthError) Error() string {
	return fmt.Sprintf("data length (%d) does not match schema length (%d)", e.DataLength, e.SchemaLength)
}

// SchemaFinalizedError occurs when an attribute is added to a Schema after the header ended
type SchemaFinalizedError struct{ Name string }

// Error returns a textual representation of this SchemaFinalizedError
func (e SchemaFinalizedError) Error() string {
	return fmt.Sprintf("Cannot add attribute %s to a finalized schema", e.Name)
}

// SchemaNotFinalizedError occurs when a Row is appended before the header ended
type SchemaNotFinalizedError struct{}

// Error returns a textual representation of this SchemaNotFinalizedError
func (e SchemaNotFinalizedError) Error() string {
	return "Cannot append rows before the schema is finalized"
}

// InvalidValueError occurs when a Value does not fit the type of the column it is stored in
type InvalidValueError struct {
	Column string
	Reason string
}

// Error returns a textual representation of this InvalidValueError
func (e InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid value for attribute %s: %s", e.Column, e.Reason)
}

// LineError attaches the 1-based input line number to an error raised while processing that line
type LineError struct {
	Line int
	Err  error
}

// Error returns a textual representation of this LineError
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the error raised for the line
func (e LineError) Unwrap() error {
	return e.Err
}

// ReadError occurs when the input of a LineSource fails before it is exhausted
type ReadError struct {
	Source string
	Err    error
}

// Error returns a textual representation of this ReadError
func (e ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying read error
func (e ReadError) Unwrap() error {
	return e.Err
}

// RowIndexError occurs when a row position is outside of a Relation
type RowIndexError struct {
	Index   int
	NumRows int
}

// Error returns a textual representation of this RowIndexError
func (e RowIndexError) Error() string {
	return fmt.Sprintf("Row %d out of range [0, %d)", e.Index, e.NumRows)
}
