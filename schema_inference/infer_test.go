package schema_inference

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func numbersBatch(t *testing.T) []Record {
	t.Helper()

	fields := []string{"a", "b", "c", "d", "e"}
	row := func(a float64, b string, c, d int64, e *big.Rat) Record {
		dec, err := DecimalValue(b)
		if err != nil {
			t.Fatal(err)
		}
		return NamedTuple{
			Name:  "Numbers1",
			Names: fields,
			Values: []Value{
				FloatValue(a),
				dec,
				Int64Value(c),
				Int64Value(d),
				RationalValue(e),
			},
		}
	}

	return []Record{
		row(1.23, "1.2", 8589934592, 1, big.NewRat(1, 2)),
		row(4.56, "3.45", 1, 2, big.NewRat(2, 3)),
		row(7.89, "0.123456789012345678901234", 2, 3, big.NewRat(3, 4)),
	}
}

func TestInferNumbers(t *testing.T) {
	ddl, err := Infer(numbersBatch(t))
	if err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"CREATE TABLE Numbers1 (",
		"    a DOUBLE PRECISION,",
		"    b DECIMAL(26, 25),",
		"    c BIGINT,",
		"    d SMALLINT,",
		"    e DOUBLE PRECISION",
		");",
	}, "\n")
	if ddl != expected {
		t.Fatalf("got wrong DDL:\n%s", ddl)
	}
}

func TestInferIdempotent(t *testing.T) {
	batch := numbersBatch(t)
	first, err := Infer(batch)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Infer(batch)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("repeated inference produced different output")
	}
}

func TestInferInsufficientData(t *testing.T) {
	_, err := Infer(numbersBatch(t)[:1])
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatal("single row batch should fail, got", err)
	}

	_, err = Infer(nil)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatal("empty batch should fail, got", err)
	}
}

func TestInferNotUniformRecordShape(t *testing.T) {
	_, err := Infer([]Record{
		NamedTuple{Name: "A", Names: []string{"x"}, Values: []Value{Int64Value(1)}},
		nil,
	})
	if !errors.Is(err, ErrNotUniformRecordShape) {
		t.Fatal("nil row should fail shape check, got", err)
	}

	_, err = Infer([]Record{
		NamedTuple{Name: "A", Names: []string{"x"}, Values: []Value{Int64Value(1)}},
		NamedTuple{Name: "A"},
	})
	if !errors.Is(err, ErrNotUniformRecordShape) {
		t.Fatal("fieldless row should fail shape check, got", err)
	}
}

func TestInferMixedRecordTypes(t *testing.T) {
	_, err := Infer([]Record{
		NamedTuple{Name: "A", Names: []string{"x"}, Values: []Value{Int64Value(1)}},
		NamedTuple{Name: "B", Names: []string{"x"}, Values: []Value{Int64Value(2)}},
	})
	if !errors.Is(err, ErrMixedRecordTypes) {
		t.Fatal("mixed record types should fail, got", err)
	}
}

func TestInferColumnOrder(t *testing.T) {
	fields := []string{"z", "m", "a"}
	batch := []Record{
		NamedTuple{Name: "Ordered", Names: fields, Values: []Value{Int64Value(1), FloatValue(1.5), StringValue("hey")}},
		NamedTuple{Name: "Ordered", Names: fields, Values: []Value{Int64Value(2), FloatValue(2.5), StringValue("ho")}},
	}
	ddl, err := Infer(batch)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(ddl, "\n")
	if len(lines) != 5 {
		t.Fatal("got wrong line count:", len(lines))
	}
	for i, field := range fields {
		if !strings.HasPrefix(strings.TrimSpace(lines[i+1]), field+" ") {
			t.Fatalf("column %d should be %s, got line %q", i, field, lines[i+1])
		}
	}
}
