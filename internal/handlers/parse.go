package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// numberField coerces a loosely-typed JSON value into a float64. The web form
// submits numbers both as JSON numbers and as strings, so both are accepted;
// anything else is rejected with the field name in the message.
func numberField(field string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number", field)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s must be a number", field)
	}
}

// optionalNumberField is numberField for fields that may be absent or null.
func optionalNumberField(field string, v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, err := numberField(field, v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
