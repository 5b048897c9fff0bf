package compiler

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the three runtime value types.
type ValueKind string

const (
	KindInt   ValueKind = "int"
	KindFloat ValueKind = "float"
	KindText  ValueKind = "text"
)

// Value is the runtime form of an evaluated expression or stored variable.
// IntValue, FloatValue and TextValue are its only implementations.
type Value interface {
	Kind() ValueKind
	// String is the form used by say, by + concatenation and by comparisons.
	String() string
	value()
}

type IntValue int64

type FloatValue float64

type TextValue string

func (IntValue) Kind() ValueKind   { return KindInt }
func (FloatValue) Kind() ValueKind { return KindFloat }
func (TextValue) Kind() ValueKind  { return KindText }

func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }

// String uses fixed notation with six fractional digits: 2.5 is "2.500000".
// Infinities and NaN print as inf, -inf and nan.
func (v FloatValue) String() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

func (v TextValue) String() string { return string(v) }

func (IntValue) value()   {}
func (FloatValue) value() {}
func (TextValue) value()  {}

// EmptyValue is what an unset variable evaluates to.
var EmptyValue Value = TextValue("")

// spaceChars is the C isspace set.
const spaceChars = " \t\n\v\f\r"

// AutoConvert maps raw text to an integer when the text after any leading
// whitespace parses as one, else to a float when it parses as a decimal
// float, else to text unchanged. Trailing whitespace keeps the text as text.
func AutoConvert(s string) Value {
	t := strings.TrimLeft(s, spaceChars)
	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return IntValue(n)
	}
	if f, ok := parseDecimal(t); ok {
		return FloatValue(f)
	}
	return TextValue(s)
}

// parseDecimal accepts plain decimal floats ("1.5", "-2", ".5", "1e3") and
// rejects the extra spellings strconv understands (inf, nan, hex, '_').
func parseDecimal(s string) (float64, bool) {
	if s == "" || strings.IndexFunc(s, notDecimalRune) >= 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// numberPrefix returns the leading float in s after whitespace, ignoring
// whatever follows it: " 5abc" gives "5", "-1.5e3x" gives "-1.5e3". It also
// accepts inf and infinity in any case, with an optional sign, and an
// unsigned nan. ok is false when s does not start with a number.
func numberPrefix(s string) (string, bool) {
	s = strings.TrimLeft(s, spaceChars)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	rest := strings.ToLower(s[i:])
	for _, word := range []string{"infinity", "inf"} {
		if strings.HasPrefix(rest, word) {
			return s[:i+len(word)], true
		}
	}
	if i == 0 && strings.HasPrefix(rest, "nan") {
		return s[:3], true
	}

	digits := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(rune(s[i])) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return "", false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(rune(s[j])) {
			for j < len(s) && isDigit(rune(s[j])) {
				j++
			}
			i = j
		}
	}
	return s[:i], true
}

func notDecimalRune(r rune) bool {
	switch {
	case '0' <= r && r <= '9':
		return false
	case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		return false
	}
	return true
}

// toInt is the integer view used by - * /. Floats truncate toward zero and
// text counts as 0.
func toInt(v Value) int64 {
	switch v := v.(type) {
	case IntValue:
		return int64(v)
	case FloatValue:
		return int64(v)
	}
	return 0
}

func toFloat(v Value) float64 {
	switch v := v.(type) {
	case IntValue:
		return float64(v)
	case FloatValue:
		return float64(v)
	}
	return 0
}

// Truthy reports whether v selects the true branch of a when: only a
// non-zero integer does.
func Truthy(v Value) bool {
	n, ok := v.(IntValue)
	return ok && n != 0
}

func boolValue(b bool) Value {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}
