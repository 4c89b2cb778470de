// SPDX-License-Identifier: MPL-2.0

package argparse

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// DecodeTag is the struct tag Values.Decode reads field keys from.
const DecodeTag = "arg"

// Values maps argument keys to their values after a parse. Keys keep the
// order in which the arguments were consumed.
type Values struct {
	keys   []string
	values map[string]any
}

func newValues(args []*Argument) *Values {
	v := &Values{values: make(map[string]any)}
	for _, a := range args {
		if !a.HasKey() {
			continue
		}
		if _, ok := v.values[a.key]; !ok {
			v.keys = append(v.keys, a.key)
		}
		v.values[a.key] = a.value
	}
	return v
}

// Get returns the value for key, or an *UnknownKeyError.
func (v *Values) Get(key string) (any, error) {
	key = normalizeKey(key)
	val, ok := v.values[key]
	if !ok {
		return nil, &UnknownKeyError{Key: key}
	}
	return val, nil
}

// Lookup returns the value for key and whether it exists.
func (v *Values) Lookup(key string) (any, bool) {
	val, ok := v.values[normalizeKey(key)]
	return val, ok
}

// Has reports whether key exists.
func (v *Values) Has(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// Keys returns the keys in order.
func (v *Values) Keys() []string { return slices.Clone(v.keys) }

// Len returns the number of keys.
func (v *Values) Len() int { return len(v.keys) }

// Empty reports whether there are no keys.
func (v *Values) Empty() bool { return len(v.keys) == 0 }

// Map returns a copy of the underlying map.
func (v *Values) Map() map[string]any { return maps.Clone(v.values) }

// String returns the value for key as a string.
func (v *Values) String(key string) (string, error) {
	val, err := v.Get(key)
	if err != nil {
		return "", err
	}
	return cast.ToStringE(val)
}

// Int returns the value for key as an int.
func (v *Values) Int(key string) (int, error) {
	val, err := v.Get(key)
	if err != nil {
		return 0, err
	}
	return cast.ToIntE(val)
}

// Bool returns the value for key as a bool.
func (v *Values) Bool(key string) (bool, error) {
	val, err := v.Get(key)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, nil
	}
	return cast.ToBoolE(val)
}

// Float returns the value for key as a float64.
func (v *Values) Float(key string) (float64, error) {
	val, err := v.Get(key)
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(val)
}

// Strings returns the value for key as a []string. A nil value is a nil
// slice and a single string is a slice of one.
func (v *Values) Strings(key string) ([]string, error) {
	val, err := v.Get(key)
	if err != nil {
		return nil, err
	}
	switch s := val.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{s}, nil
	default:
		return cast.ToStringSliceE(val)
	}
}

// Decode copies the values into the struct pointed to by target, matching
// fields by their `arg` tag, or by name when untagged. Weakly typed input is
// accepted, so "3" decodes into an int field. A field with no matching key
// is an *UnknownKeyError, as it would be from Get.
func (v *Values) Decode(target any) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          DecodeTag,
		WeaklyTypedInput: true,
		Metadata:         &md,
	})
	if err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	if err := dec.Decode(v.values); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	if len(md.Unset) > 0 {
		slices.Sort(md.Unset)
		return &UnknownKeyError{Key: md.Unset[0]}
	}
	return nil
}
