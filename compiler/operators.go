package compiler

import (
	"fmt"
	"strconv"
)

// ApplyOp combines two evaluated operands.
//
//	+            text if either side is text, float if either is float, else int
//	- * /        integer arithmetic on both sides
//	== !=        compare string forms
//	> < >= <=    compare the leading numbers of the string forms
//
// Comparisons yield IntValue 1 or 0. Errors from this function carry no
// position; the interpreter wraps them with the operator token.
func ApplyOp(left Value, op string, right Value) (Value, error) {
	switch op {
	case "+":
		return add(left, right), nil
	case "-":
		return IntValue(toInt(left) - toInt(right)), nil
	case "*":
		return IntValue(toInt(left) * toInt(right)), nil
	case "/":
		d := toInt(right)
		if d == 0 {
			return nil, ErrDivisionByZero
		}
		return IntValue(toInt(left) / d), nil
	case "==":
		return boolValue(left.String() == right.String()), nil
	case "!=":
		return boolValue(left.String() != right.String()), nil
	case ">", "<", ">=", "<=":
		return compare(left, op, right)
	}
	return nil, &UnknownOperatorError{Op: op}
}

// UnknownOperatorError is returned by ApplyOp for a symbol it does not know,
// such as a stray character the lexer passed through as an operator.
type UnknownOperatorError struct {
	Op string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %s", e.Op)
}

func add(left, right Value) Value {
	lk, rk := left.Kind(), right.Kind()
	switch {
	case lk == KindText || rk == KindText:
		return TextValue(left.String() + right.String())
	case lk == KindFloat || rk == KindFloat:
		return FloatValue(toFloat(left) + toFloat(right))
	}
	return IntValue(toInt(left) + toInt(right))
}

func compare(left Value, op string, right Value) (Value, error) {
	l, err := orderKey(left)
	if err != nil {
		return nil, fmt.Errorf("cannot compare %q with %s: %w", left.String(), op, err)
	}
	r, err := orderKey(right)
	if err != nil {
		return nil, fmt.Errorf("cannot compare %q with %s: %w", right.String(), op, err)
	}
	switch op {
	case ">":
		return boolValue(l > r), nil
	case "<":
		return boolValue(l < r), nil
	case ">=":
		return boolValue(l >= r), nil
	}
	return boolValue(l <= r), nil
}

// orderKey reads the number at the start of v's string form; trailing text
// is ignored. Values beyond float64 range are an error.
func orderKey(v Value) (float64, error) {
	prefix, ok := numberPrefix(v.String())
	if !ok {
		return 0, ErrNotANumber
	}
	return strconv.ParseFloat(prefix, 64)
}
