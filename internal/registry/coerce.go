package registry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParamType tags the Go type a parameter is coerced to before dispatch.
type ParamType string

const (
	TypeString   ParamType = "string"
	TypeInt      ParamType = "int"
	TypeFloat    ParamType = "float"
	TypeBool     ParamType = "bool"
	TypeDuration ParamType = "duration"
	// TypeStrings accepts a comma-separated list.
	TypeStrings ParamType = "strings"
)

// Valid reports whether t is one of the known parameter types.
func (t ParamType) Valid() bool {
	switch t {
	case TypeString, TypeInt, TypeFloat, TypeBool, TypeDuration, TypeStrings:
		return true
	default:
		return false
	}
}

// Normalize maps unknown or empty tags to TypeString.
func (t ParamType) Normalize() ParamType {
	normalized := ParamType(strings.ToLower(strings.TrimSpace(string(t))))
	if normalized.Valid() {
		return normalized
	}
	return TypeString
}

// Zero returns the value a parameter of this type holds when nothing was supplied.
func (t ParamType) Zero() any {
	switch t.Normalize() {
	case TypeInt:
		return 0
	case TypeFloat:
		return float64(0)
	case TypeBool:
		return false
	case TypeDuration:
		return time.Duration(0)
	case TypeStrings:
		return []string(nil)
	default:
		return ""
	}
}

// Parse converts a command-line token to the canonical Go value for t.
func (t ParamType) Parse(raw string) (any, error) {
	switch t.Normalize() {
	case TypeInt:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid int value %q", raw)
		}
		return v, nil
	case TypeFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float value %q", raw)
		}
		return v, nil
	case TypeBool:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid bool value %q", raw)
		}
		return v, nil
	case TypeDuration:
		v, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid duration value %q", raw)
		}
		return v, nil
	case TypeStrings:
		return splitList(raw), nil
	default:
		return raw, nil
	}
}

// Convert normalizes a declared default to the canonical Go value for t.
// Strings are parsed as if they came from the command line.
func (t ParamType) Convert(value any) (any, error) {
	if value == nil {
		return t.Zero(), nil
	}
	if raw, ok := value.(string); ok {
		return t.Parse(raw)
	}
	switch t.Normalize() {
	case TypeInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case int8:
			return int(v), nil
		case int16:
			return int(v), nil
		case int32:
			return int(v), nil
		case int64:
			return int(v), nil
		case uint:
			return int(v), nil
		case uint8:
			return int(v), nil
		case uint16:
			return int(v), nil
		case uint32:
			return int(v), nil
		}
	case TypeFloat:
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
	case TypeBool:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case TypeDuration:
		if v, ok := value.(time.Duration); ok {
			return v, nil
		}
	case TypeStrings:
		if v, ok := value.([]string); ok {
			return append([]string(nil), v...), nil
		}
	default:
		if v, ok := value.(fmt.Stringer); ok {
			return v.String(), nil
		}
		return fmt.Sprint(value), nil
	}
	return nil, fmt.Errorf("default %v (%T) is not a %s", value, value, t.Normalize())
}

// Format renders a value of type t the way it is accepted on the command line.
func (t ParamType) Format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(v, ",")
	case time.Duration:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
