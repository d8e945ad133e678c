package domain

import (
	"strconv"
	"strings"
)

// CleanCustom normalises caller-supplied targeting variables. Non-scalar
// values and empty keys or values are stripped; scalars are coerced to
// trimmed strings. The result feeds targeting, tracking attributes and the
// request event unchanged.
func CleanCustom(raw map[string]any) map[string]string {
	cleaned := make(map[string]string, len(raw))
	for k, v := range raw {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		s, ok := scalarString(v)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cleaned[k] = s
	}
	return cleaned
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		// JSON numbers decode as float64; keep integral values clean.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
