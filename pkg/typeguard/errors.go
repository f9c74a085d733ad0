package typeguard

import (
	"fmt"
	"reflect"
)

// SpecificationError reports malformed use of the framework itself: a
// programming error in annotated code or in an extension, as opposed to a
// value failing its check. Check failures are never errors; they are false
// returns from Check and IsCompatible.
type SpecificationError struct {
	Message string
}

func (e *SpecificationError) Error() string {
	return "typeguard specification error: " + e.Message
}

// NewSpecificationError builds a SpecificationError from a format string.
func NewSpecificationError(format string, args ...any) *SpecificationError {
	return &SpecificationError{Message: fmt.Sprintf(format, args...)}
}

// InputParameterError reports that an argument failed its conformance
// check. Produced by interception layers, never by the core.
type InputParameterError struct {
	Func     string
	Param    string
	Expected string
	Observed string
}

func (e *InputParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %s: expected %s, got %s", e.Func, e.Param, e.Expected, e.Observed)
}

// NewInputParameterError builds an InputParameterError.
func NewInputParameterError(fn, param, expected, observed string) *InputParameterError {
	return &InputParameterError{Func: fn, Param: param, Expected: expected, Observed: observed}
}

// ReturnValueError reports that a return value failed its conformance
// check. Produced by interception layers, never by the core.
type ReturnValueError struct {
	Func     string
	Expected string
	Observed string
}

func (e *ReturnValueError) Error() string {
	return fmt.Sprintf("%s: return value: expected %s, got %s", e.Func, e.Expected, e.Observed)
}

// NewReturnValueError builds a ReturnValueError.
func NewReturnValueError(fn, expected, observed string) *ReturnValueError {
	return &ReturnValueError{Func: fn, Expected: expected, Observed: observed}
}

// Describe renders an annotation for error messages: types by their Go
// name, stringer checkers by their String, anything else by %v.
func Describe(annotation any) string {
	switch a := annotation.(type) {
	case nil:
		return "<nil>"
	case reflect.Type:
		return a.String()
	case fmt.Stringer:
		return a.String()
	default:
		return fmt.Sprintf("%v", a)
	}
}

// DescribeValue renders an observed value's dynamic type for error
// messages.
func DescribeValue(value any) string {
	if value == NoValue {
		return "<no value>"
	}
	t := reflect.TypeOf(value)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
