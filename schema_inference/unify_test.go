package schema_inference

import (
	"math/big"
	"testing"
)

func TestUnifyFloats(t *testing.T) {
	got := UnifyColumn([]Value{FloatValue(1.23), FloatValue(4.56), FloatValue(7.89)})
	if got != "DOUBLE PRECISION" {
		t.Fatal("got wrong type for floats:", got)
	}
}

func TestUnifyIntegerSizing(t *testing.T) {
	bitVal := func(bits uint) Value {
		// smallest value needing exactly `bits` bits
		return IntValue(new(big.Int).Lsh(big.NewInt(1), bits-1))
	}

	got := UnifyColumn([]Value{Int64Value(1), bitVal(16)})
	if got != "SMALLINT" {
		t.Fatal("16 bits should be SMALLINT, got", got)
	}

	got = UnifyColumn([]Value{Int64Value(1), bitVal(17)})
	if got != "INTEGER" {
		t.Fatal("17 bits should be INTEGER, got", got)
	}

	got = UnifyColumn([]Value{Int64Value(1), bitVal(33)})
	if got != "BIGINT" {
		t.Fatal("33 bits should be BIGINT, got", got)
	}

	got = UnifyColumn([]Value{Int64Value(1), bitVal(65)})
	if got != "DECIMAL(21)" {
		t.Fatal("65 bits should overflow to a sized DECIMAL, got", got)
	}
}

func TestUnifyNegativeIntegers(t *testing.T) {
	got := UnifyColumn([]Value{Int64Value(-32768), Int64Value(5)})
	if got != "SMALLINT" {
		t.Fatal("negative 16 bit value should be SMALLINT, got", got)
	}
}

func TestUnifyDecimals(t *testing.T) {
	mustDecimal := func(s string) Value {
		v, err := DecimalValue(s)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	got := UnifyColumn([]Value{mustDecimal("1.2"), mustDecimal("12.3456")})
	if got != "DECIMAL(7, 5)" {
		t.Fatal("got wrong decimal sizing:", got)
	}

	// no point means zero fractional digits observed, headroom still applies
	got = UnifyColumn([]Value{mustDecimal("123"), mustDecimal("9")})
	if got != "DECIMAL(4, 1)" {
		t.Fatal("got wrong pointless decimal sizing:", got)
	}
}

func TestUnifyCurrency(t *testing.T) {
	got := UnifyColumn([]Value{StringValue("$4.20"), StringValue("$1000")})
	if got != "DECIMAL(10, 2)" {
		t.Fatal("got wrong type for currency strings:", got)
	}
}

func TestUnifyRationals(t *testing.T) {
	got := UnifyColumn([]Value{RationalValue(big.NewRat(1, 2)), RationalValue(big.NewRat(2, 3))})
	if got != "DOUBLE PRECISION" {
		t.Fatal("got wrong type for rationals:", got)
	}
}

func TestUnifyMixedFallsBackToText(t *testing.T) {
	got := UnifyColumn([]Value{FloatValue(1.5), Int64Value(2)})
	if got != "TEXT" {
		t.Fatal("mixed float and integer should be TEXT, got", got)
	}

	got = UnifyColumn([]Value{StringValue("hey"), StringValue("ho")})
	if got != "TEXT" {
		t.Fatal("plain strings should be TEXT, got", got)
	}

	got = UnifyColumn([]Value{StringValue("$1"), StringValue("ho")})
	if got != "TEXT" {
		t.Fatal("currency mixed with plain text should be TEXT, got", got)
	}
}
