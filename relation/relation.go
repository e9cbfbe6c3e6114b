// Package relation holds a loaded ARFF dataset: its name, Schema and rows,
// with row and column views over the decoded Values.
package relation

import (
	"fmt"
	"log"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/arff"
	"github.com/go-sif/arff/errors"
	"github.com/go-sif/arff/schema"
	uuid "github.com/gofrs/uuid"
)

// Relation is a fully-typed ARFF dataset. Rows may only be appended once the
// Schema has been finalized, and every row is as wide as the Schema.
// A Relation is not safe for concurrent mutation.
type Relation struct {
	id       string
	filename string
	name     string
	schema   *schema.Schema
	rows     [][]arff.Value
}

// CreateRelation is a factory for empty Relations read from filename
func CreateRelation(filename string) *Relation {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Relation: %v", err)
	}
	return &Relation{
		id:       id.String(),
		filename: filename,
		schema:   schema.CreateSchema(),
		rows:     make([][]arff.Value, 0),
	}
}

// ID retrieves the unique ID of this Relation
func (r *Relation) ID() string {
	return r.id
}

// Filename returns the file this Relation was read from, or "" if unknown
func (r *Relation) Filename() string {
	return r.filename
}

// Name returns the relation name declared by @relation
func (r *Relation) Name() string {
	return r.name
}

// SetName sets the relation name
func (r *Relation) SetName(name string) {
	r.name = name
}

// Schema returns the Schema of this Relation
func (r *Relation) Schema() *schema.Schema {
	return r.schema
}

// NumRows returns the number of rows in this Relation
func (r *Relation) NumRows() int {
	return len(r.rows)
}

// AppendRow validates a row against the finalized Schema and appends it
func (r *Relation) AppendRow(values []arff.Value) error {
	if !r.schema.IsFinalized() {
		return errors.SchemaNotFinalizedError{}
	}
	if len(values) != r.schema.NumAttributes() {
		return errors.RowWidthError{DataLength: len(values), SchemaLength: r.schema.NumAttributes()}
	}
	for i, v := range values {
		if err := r.checkValue(i, v); err != nil {
			return err
		}
	}
	row := make([]arff.Value, len(values))
	copy(row, values)
	r.rows = append(r.rows, row)
	return nil
}

func (r *Relation) checkValue(col int, v arff.Value) error {
	attr, ok := r.schema.Attribute(col)
	if !ok {
		return fmt.Errorf("Relation does not contain column %d", col)
	}
	if err := attr.Type().Accepts(v); err != nil {
		return errors.InvalidValueError{Column: attr.Name(), Reason: err.Error()}
	}
	return nil
}

// Row returns a copy of the row at the given index
func (r *Relation) Row(idx int) ([]arff.Value, bool) {
	if idx < 0 || idx >= len(r.rows) {
		return nil, false
	}
	row := make([]arff.Value, len(r.rows[idx]))
	copy(row, r.rows[idx])
	return row, true
}

// MutableRow returns an editable view of the row at the given index
func (r *Relation) MutableRow(idx int) (*MutableRow, bool) {
	if idx < 0 || idx >= len(r.rows) {
		return nil, false
	}
	return &MutableRow{rel: r, idx: idx}, true
}

// Col returns the values at the given column position of every row. It is
// absent if the position is outside the Schema or any row lacks it.
func (r *Relation) Col(col int) ([]arff.Value, bool) {
	if !r.hasColumn(col) {
		return nil, false
	}
	values := make([]arff.Value, len(r.rows))
	for i, row := range r.rows {
		values[i] = row[col]
	}
	return values, true
}

// MutableCol returns an editable view of the given column. It is absent if
// any row lacks that position.
func (r *Relation) MutableCol(col int) (*MutableColumn, bool) {
	if !r.hasColumn(col) {
		return nil, false
	}
	return &MutableColumn{rel: r, col: col}, true
}

func (r *Relation) hasColumn(col int) bool {
	if col < 0 || col >= r.schema.NumAttributes() {
		return false
	}
	for _, row := range r.rows {
		if col >= len(row) {
			return false
		}
	}
	return true
}

// ForEachRow iterates over the rows of this Relation in file order. The row slice must not be retained.
func (r *Relation) ForEachRow(fn func(idx int, row []arff.Value) error) error {
	for i, row := range r.rows {
		if err := fn(i, row); err != nil {
			return err
		}
	}
	return nil
}

// Equals returns nil iff this and another Relation have the same name,
// Schema and rows. IDs and filenames are not compared.
func (r *Relation) Equals(other *Relation) error {
	if r.name != other.name {
		return fmt.Errorf("Relation names do not match: %s != %s", r.name, other.name)
	}
	if err := r.schema.Equals(other.schema); err != nil {
		return err
	}
	if len(r.rows) != len(other.rows) {
		return fmt.Errorf("Relations have unequal numbers of rows: %d != %d", len(r.rows), len(other.rows))
	}
	for i, row := range r.rows {
		for j, v := range row {
			if !v.Equal(other.rows[i][j]) {
				return fmt.Errorf("Row %d column %d values do not match: %s != %s", i, j, v, other.rows[i][j])
			}
		}
	}
	return nil
}

// Fingerprint returns a hash of the name, Schema and rows of this Relation
func (r *Relation) Fingerprint() uint64 {
	hasher := xxhash.New()
	hasher.WriteString(r.name)
	hasher.Write([]byte{0})
	r.schema.WriteFingerprint(hasher)
	for _, row := range r.rows {
		for _, v := range row {
			schema.WriteValue(hasher, v)
		}
	}
	return hasher.Sum64()
}
