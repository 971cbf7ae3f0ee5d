package schema_inference

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

type (
	// Kind is the category a Value gets matched on during unification
	Kind int

	// Value is one observed cell of a column. Exactly one of the payload
	// fields is meaningful, selected by Kind.
	Value struct {
		Kind Kind

		Float float64
		Int   *big.Int
		// Decimal is the canonical plain string form, e.g. "123.45"
		Decimal string
		Rat     *big.Rat
		// Str holds currency strings and the raw rendering of KindOther values
		Str string
	}
)

const (
	KindOther Kind = iota
	KindFloat
	KindInt
	KindDecimal
	KindCurrency
	KindRational
)

var decimalRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

func IntValue(i *big.Int) Value {
	return Value{Kind: KindInt, Int: i}
}

func Int64Value(i int64) Value {
	return Value{Kind: KindInt, Int: big.NewInt(i)}
}

// DecimalValue takes the canonical plain string form of an exact decimal,
// no exponent notation
func DecimalValue(s string) (Value, error) {
	if !decimalRegex.MatchString(s) {
		return Value{}, fmt.Errorf("'%s' is not a plain decimal literal", s)
	}
	return Value{Kind: KindDecimal, Decimal: s}, nil
}

func RationalValue(r *big.Rat) Value {
	return Value{Kind: KindRational, Rat: r}
}

// StringValue classifies a raw string: a leading currency marker makes it
// monetary, anything else stays opaque text
func StringValue(s string) Value {
	if strings.HasPrefix(s, "$") {
		return Value{Kind: KindCurrency, Str: s}
	}
	return Value{Kind: KindOther, Str: s}
}

func OtherValue(s string) Value {
	return Value{Kind: KindOther, Str: s}
}
