package schema_inference

import (
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var rationalRegex = regexp.MustCompile(`^-?\d+/\d+$`)

// FromJSON maps a decoded JSON cell onto the closed value model. JSON has no
// exact decimal or rational literal, so those arrive as strings: a plain
// decimal literal with a fractional part ("1.25") becomes an exact decimal
// and "a/b" becomes a rational. Numbers must be decoded with
// json.Decoder.UseNumber, a bare float64 would lose the integer distinction.
func FromJSON(cell any) Value {
	switch tv := cell.(type) {
	case json.Number:
		s := string(tv)
		if !strings.ContainsAny(s, ".eE") {
			if i, ok := new(big.Int).SetString(s, 10); ok {
				return IntValue(i)
			}
		}
		if f, err := tv.Float64(); err == nil {
			return FloatValue(f)
		}
		return OtherValue(s)
	case string:
		if strings.HasPrefix(tv, "$") {
			return StringValue(tv)
		}
		if rationalRegex.MatchString(tv) {
			if r, ok := new(big.Rat).SetString(tv); ok {
				return RationalValue(r)
			}
		}
		if strings.ContainsRune(tv, '.') {
			if v, err := DecimalValue(tv); err == nil {
				return v
			}
		}
		return OtherValue(tv)
	case bool:
		return OtherValue(strconv.FormatBool(tv))
	case nil:
		return OtherValue("null")
	}
	return OtherValue(fmt.Sprintf("%v", cell))
}
