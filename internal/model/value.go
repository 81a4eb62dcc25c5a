package model

import (
	"fmt"
	"log/slog"
)

// PropertyValue wraps an inspected value with its declared type token and
// a display string. Construction never fails: values without a meaningful
// printable form degrade to a type-name placeholder.
type PropertyValue struct {
	Raw  any
	Type PropertyType
	Text string
}

// NewPropertyValue builds a PropertyValue for a dynamically typed value.
func NewPropertyValue(value any) PropertyValue {
	return NewTypedPropertyValue(value, TypeOf(value))
}

// NewTypedPropertyValue builds a PropertyValue with an explicit declared
// type, used by the generically typed inspection call forms.
func NewTypedPropertyValue(value any, declared PropertyType) PropertyValue {
	return PropertyValue{
		Raw:  value,
		Type: declared,
		Text: renderText(value, declared),
	}
}

// renderText produces the display string for a value. Stringer and error
// implementations that panic degrade to the type-name placeholder instead
// of failing the inspection call.
func renderText(value any, declared PropertyType) (text string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("value rendering panicked", "type", declared.Name(), "panic", r)
			text = placeholder(declared)
		}
	}()

	if value == nil {
		return "nil"
	}

	switch v := value.(type) {
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case string:
		return v
	}

	return fmt.Sprintf("%v", value)
}

func placeholder(declared PropertyType) string {
	return fmt.Sprintf("<%s>", declared.Name())
}
