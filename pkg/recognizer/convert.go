// SPDX-License-Identifier: MPL-2.0

package recognizer

import (
	"strings"

	"github.com/spf13/cast"
)

// Converter turns a raw flag value into the value handed to a Callback.
type Converter func(raw string) (any, error)

var (
	// String passes the raw token through unchanged.
	String Converter = func(raw string) (any, error) { return raw, nil }

	// Int parses a base-10 integer.
	Int Converter = func(raw string) (any, error) { return cast.ToIntE(raw) }

	// Float parses a 64-bit float.
	Float Converter = func(raw string) (any, error) { return cast.ToFloat64E(raw) }

	// Bool parses true/false, 1/0 and the other forms strconv accepts.
	Bool Converter = func(raw string) (any, error) { return cast.ToBoolE(raw) }

	// Duration parses a time.Duration such as "1m30s".
	Duration Converter = func(raw string) (any, error) { return cast.ToDurationE(raw) }

	// List splits a comma separated value into a []string.
	List Converter = func(raw string) (any, error) {
		if raw == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
)

// convert applies c, falling back to String when c is nil.
func (c Converter) convert(raw string) (any, error) {
	if c == nil {
		return String(raw)
	}
	return c(raw)
}
