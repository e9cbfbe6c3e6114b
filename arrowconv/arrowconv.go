// Package arrowconv converts loaded Relations into Apache Arrow tables.
// Numeric attributes become Float64 columns and nominal attributes become
// String columns holding the value names. Missing values are null.
package arrowconv

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-sif/arff"
	"github.com/go-sif/arff/relation"
)

const (
	// TypeMetadataKey is the field metadata key recording the ARFF attribute kind
	TypeMetadataKey = "arff.type"
	// RelationMetadataKey is the schema metadata key recording the relation name
	RelationMetadataKey = "arff.relation"
)

// ToTable builds an arrow.Table holding every row of rel. If mem is nil a Go
// allocator is used. The caller must Release the table.
func ToTable(rel *relation.Relation, mem memory.Allocator) (arrow.Table, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	attrs := rel.Schema().Attributes()
	fields := make([]arrow.Field, len(attrs))
	columns := make([]arrow.Column, 0, len(attrs))
	defer func() {
		for i := range columns {
			columns[i].Release()
		}
	}()
	for i, attr := range attrs {
		fields[i] = arrow.Field{
			Name:     attr.Name(),
			Type:     dataType(attr.Type()),
			Nullable: true,
			Metadata: arrow.NewMetadata([]string{TypeMetadataKey}, []string{attr.Type().Kind().String()}),
		}
		values, ok := rel.Col(i)
		if !ok {
			return nil, fmt.Errorf("Relation %s is missing column %d", rel.Name(), i)
		}
		arr, err := buildArray(values, attr, mem)
		if err != nil {
			return nil, err
		}
		chunked := arrow.NewChunked(fields[i].Type, []arrow.Array{arr})
		arr.Release()
		columns = append(columns, *arrow.NewColumn(fields[i], chunked))
		chunked.Release()
	}
	schema := arrow.NewSchema(fields, metadataPtr(arrow.NewMetadata([]string{RelationMetadataKey}, []string{rel.Name()})))
	return array.NewTable(schema, columns, int64(rel.NumRows())), nil
}

func metadataPtr(md arrow.Metadata) *arrow.Metadata {
	return &md
}

func dataType(t *arff.AttributeType) arrow.DataType {
	if t.IsNominal() {
		return arrow.BinaryTypes.String
	}
	return arrow.PrimitiveTypes.Float64
}

func buildArray(values []arff.Value, attr arff.AttributeFormat, mem memory.Allocator) (arrow.Array, error) {
	if attr.Type().IsNominal() {
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for _, v := range values {
			if v.IsMissing() {
				b.AppendNull()
				continue
			}
			code, err := v.Code()
			if err != nil {
				return nil, fmt.Errorf("attribute %s: %w", attr.Name(), err)
			}
			name, ok := attr.Type().ValueName(code)
			if !ok {
				return nil, fmt.Errorf("attribute %s: nominal code %d is not declared", attr.Name(), code)
			}
			b.Append(name)
		}
		return b.NewArray(), nil
	}
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	for _, v := range values {
		if v.IsMissing() {
			b.AppendNull()
			continue
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", attr.Name(), err)
		}
		b.Append(f)
	}
	return b.NewArray(), nil
}
