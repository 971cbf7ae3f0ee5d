package schema_inference

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// Record is what a batch element must expose to be inferrable: positional
	// access to its values plus a shared type identity and field listing. Any
	// struct-like or tuple-like carrier can satisfy this.
	Record interface {
		TypeName() string
		FieldNames() []string
		Field(i int) Value
	}

	// NamedTuple is a concrete Record for adapters that assemble batches at
	// runtime. Values must be the same length as Names.
	NamedTuple struct {
		Name   string
		Names  []string
		Values []Value
	}
)

var (
	ErrInsufficientData      = errors.New("at least two rows of data are required to infer a schema")
	ErrNotUniformRecordShape = errors.New("all rows must be named tuples with a shared field listing")
	ErrMixedRecordTypes      = errors.New("rows have varying types, expected exactly one record type")
	ErrUnunifiableColumn     = errors.New("could not unify column values to a type")
)

func (t NamedTuple) TypeName() string {
	return t.Name
}

func (t NamedTuple) FieldNames() []string {
	return t.Names
}

func (t NamedTuple) Field(i int) Value {
	return t.Values[i]
}

// Infer validates the batch and renders a CREATE TABLE statement covering it.
// The table is named after the shared record type, columns keep the declared
// field order, and each column type comes from UnifyColumn over that field's
// values across every record. Any validation or unification failure aborts the
// whole call, a partial schema is never returned.
func Infer(records []Record) (string, error) {
	if len(records) < 2 {
		return "", ErrInsufficientData
	}

	typeNames := make(map[string]struct{})
	for _, r := range records {
		if r == nil || len(r.FieldNames()) == 0 {
			return "", ErrNotUniformRecordShape
		}
		typeNames[r.TypeName()] = struct{}{}
	}
	if len(typeNames) != 1 {
		return "", ErrMixedRecordTypes
	}

	fields := records[0].FieldNames()

	var sb strings.Builder
	sb.WriteString("CREATE TABLE " + records[0].TypeName() + " (\n")
	for i, field := range fields {
		col := make([]Value, len(records))
		for j, r := range records {
			col[j] = r.Field(i)
		}
		colType := UnifyColumn(col)
		if colType == "" {
			return "", fmt.Errorf("%w: %s", ErrUnunifiableColumn, field)
		}
		sb.WriteString("    " + field + " " + colType)
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(");")

	return sb.String(), nil
}
