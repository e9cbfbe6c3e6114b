// Package arff contains the core value types of an ARFF (Attribute-Relation File Format) reader.
// An ARFF document pairs a header (the relation name and one @attribute line per column) with
// a body of comma-separated rows. This root package defines the Value and AttributeType variants
// shared by the schema, relation and loader packages, as well as the LineSource interface through
// which the loader consumes its input. Use datasource/file or datasource/memory to load a Relation.
package arff
