package schema_inference

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Column type tokens emitted by UnifyColumn. Parameterized DECIMAL tokens are
// formatted inline.
const (
	TypeDouble   = "DOUBLE PRECISION"
	TypeSmallInt = "SMALLINT"
	TypeInteger  = "INTEGER"
	TypeBigInt   = "BIGINT"
	TypeText     = "TEXT"
	// TypeMoney is the fixed sizing for currency-marked strings
	TypeMoney = "DECIMAL(10, 2)"
)

// UnifyColumn decides a single column type covering every observed value.
// Rules are checked strictest first, so a value set satisfying more than one
// rule gets the tighter type. An empty return means no rule matched the set,
// which the TEXT fallback currently makes unreachable, callers still must
// treat it as a failure.
func UnifyColumn(values []Value) string {
	switch {
	case allKind(values, KindFloat):
		return TypeDouble
	case allKind(values, KindInt):
		return unifyIntegers(values)
	case allKind(values, KindDecimal):
		return unifyDecimals(values)
	case allKind(values, KindCurrency):
		return TypeMoney
	case allKind(values, KindRational):
		// no exact rational column type exists, accept the precision loss
		return TypeDouble
	}
	return TypeText
}

func allKind(values []Value, k Kind) bool {
	for _, v := range values {
		if v.Kind != k {
			return false
		}
	}
	return true
}

// unifyIntegers sizes the column by the bit length of the largest absolute
// value. Anything past 64 bits gets an exact DECIMAL wide enough to hold it
// instead of silently truncating.
func unifyIntegers(values []Value) string {
	maxBits := 0
	for _, v := range values {
		bits := new(big.Int).Abs(v.Int).BitLen()
		if bits > maxBits {
			maxBits = bits
		}
	}
	switch {
	case maxBits <= 16:
		return TypeSmallInt
	case maxBits <= 32:
		return TypeInteger
	case maxBits <= 64:
		return TypeBigInt
	}
	digits := int(math.Ceil(float64(maxBits)*math.Log10(2))) + 1
	return fmt.Sprintf("DECIMAL(%d)", digits)
}

// unifyDecimals scans the canonical string forms for the widest digit counts
// on each side of the point. The fractional budget is the observed maximum
// plus one digit of headroom, the total budget stacks the integer digits on
// top of that.
func unifyDecimals(values []Value) string {
	maxLeft, maxRight := 0, 0
	for _, v := range values {
		left, right := decimalDigits(v.Decimal)
		if left > maxLeft {
			maxLeft = left
		}
		if right > maxRight {
			maxRight = right
		}
	}
	frac := maxRight + 1
	return fmt.Sprintf("DECIMAL(%d, %d)", maxLeft+frac, frac)
}

func decimalDigits(s string) (left, right int) {
	s = strings.TrimPrefix(s, "-")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return i, len(s) - i - 1
	}
	return len(s), 0
}
