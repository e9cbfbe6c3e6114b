package relation

import (
	"github.com/go-sif/arff"
	"github.com/go-sif/arff/errors"
)

// MutableRow is an editable view of one row of a Relation. Edits are
// type-checked against the Schema, and the row width cannot change.
type MutableRow struct {
	rel *Relation
	idx int
}

// Len returns the width of the row
func (mr *MutableRow) Len() int {
	return len(mr.rel.rows[mr.idx])
}

// Get returns the value at the given column position
func (mr *MutableRow) Get(col int) (arff.Value, bool) {
	row := mr.rel.rows[mr.idx]
	if col < 0 || col >= len(row) {
		return arff.Value{}, false
	}
	return row[col], true
}

// Set replaces the value at the given column position
func (mr *MutableRow) Set(col int, v arff.Value) error {
	if err := mr.rel.checkValue(col, v); err != nil {
		return err
	}
	mr.rel.rows[mr.idx][col] = v
	return nil
}

// MutableColumn is an editable view of one column of a Relation
type MutableColumn struct {
	rel *Relation
	col int
}

// Len returns the number of rows in the column
func (mc *MutableColumn) Len() int {
	return len(mc.rel.rows)
}

// Get returns the value of the column in the given row
func (mc *MutableColumn) Get(row int) (arff.Value, bool) {
	if row < 0 || row >= len(mc.rel.rows) {
		return arff.Value{}, false
	}
	return mc.rel.rows[row][mc.col], true
}

// Set replaces the value of the column in the given row
func (mc *MutableColumn) Set(row int, v arff.Value) error {
	mr, ok := mc.rel.MutableRow(row)
	if !ok {
		return errors.RowIndexError{Index: row, NumRows: len(mc.rel.rows)}
	}
	return mr.Set(mc.col, v)
}
