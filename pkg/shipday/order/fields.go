package order

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/tournevent/shipday/pkg/shipday/errs"
)

// Fields is a flattened bag of wire-format keys (customerName,
// restaurantAddress, unitPrice, ...), usually decoded from JSON. Models accept
// it next to their canonical parameters for backward compatibility.
type Fields map[string]any

// String returns the string under key. A missing or null key yields "".
func (f Fields) String(key string) (string, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errs.TypeMismatch(key, fmt.Sprintf("%s must be a string", key))
	}
	return s, nil
}

// Float returns the number under key. A missing or null key yields nil.
func (f Fields) Float(key string) (*float64, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, nil
	}

	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case int32:
		n = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return nil, errs.TypeMismatch(key, fmt.Sprintf("%s must be a number", key)).WithCause(err)
		}
		n = parsed
	default:
		return nil, errs.TypeMismatch(key, fmt.Sprintf("%s must be a number", key))
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, errs.TypeMismatch(key, fmt.Sprintf("%s must be a number", key))
	}
	return &n, nil
}

// Int returns the integer under key. Integral floats, as produced by
// encoding/json, are accepted; 3.5 is not.
func (f Fields) Int(key string) (*int, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, nil
	}

	switch x := v.(type) {
	case int:
		return &x, nil
	case int64:
		n := int(x)
		return &n, nil
	case int32:
		n := int(x)
		return &n, nil
	case json.Number:
		parsed, err := x.Int64()
		if err != nil {
			return nil, errs.TypeMismatch(key, fmt.Sprintf("%s must be an integer", key)).WithCause(err)
		}
		n := int(parsed)
		return &n, nil
	case float64:
		if x != math.Trunc(x) || x >= math.MaxInt || x < math.MinInt {
			return nil, errs.TypeMismatch(key, fmt.Sprintf("%s must be an integer", key))
		}
		n := int(x)
		return &n, nil
	default:
		return nil, errs.TypeMismatch(key, fmt.Sprintf("%s must be an integer", key))
	}
}

// List returns the item-shaped maps under key.
func (f Fields) List(key string) ([]Fields, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, nil
	}

	var raw []any
	switch x := v.(type) {
	case []any:
		raw = x
	case []map[string]any:
		raw = make([]any, len(x))
		for i := range x {
			raw[i] = x[i]
		}
	case []Fields:
		return x, nil
	default:
		return nil, errs.TypeMismatch(key, fmt.Sprintf("%s must be a list", key))
	}

	result := make([]Fields, len(raw))
	for i, item := range raw {
		switch m := item.(type) {
		case map[string]any:
			result[i] = Fields(m)
		case Fields:
			result[i] = m
		default:
			return nil, errs.TypeMismatch(key, fmt.Sprintf("%s[%d] must be an object", key, i))
		}
	}
	return result, nil
}

// stringOr returns canonical when set, otherwise the first non-empty alias.
func stringOr(canonical string, f Fields, aliases ...string) (string, error) {
	if canonical != "" {
		return canonical, nil
	}
	for _, key := range aliases {
		s, err := f.String(key)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
	}
	return "", nil
}

// floatOr returns canonical when non-zero, otherwise the first non-zero alias.
func floatOr(canonical float64, f Fields, aliases ...string) (float64, error) {
	if canonical != 0 {
		return canonical, nil
	}
	for _, key := range aliases {
		n, err := f.Float(key)
		if err != nil {
			return 0, err
		}
		if n != nil && *n != 0 {
			return *n, nil
		}
	}
	return 0, nil
}

// Object returns the nested map under key.
func (f Fields) Object(key string) (Fields, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch m := v.(type) {
	case map[string]any:
		return Fields(m), nil
	case Fields:
		return m, nil
	default:
		return nil, errs.TypeMismatch(key, fmt.Sprintf("%s must be an object", key))
	}
}

// addressOr returns canonical when set, otherwise an Address built from the
// nested breakdown object under key.
func addressOr(canonical *Address, f Fields, key string) (*Address, error) {
	if canonical != nil {
		return canonical, nil
	}
	obj, err := f.Object(key)
	if err != nil || obj == nil {
		return nil, err
	}
	return AddressFromFields(obj)
}
