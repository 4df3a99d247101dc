package scene

import (
	"encoding/json"

	"github.com/df07/go-dirt/pkg/core"
)

// Record is one decoded JSON object of a scene file
type Record map[string]any

// String renders the record as indented JSON for error messages
func (r Record) String() string {
	data, err := json.MarshalIndent(map[string]any(r), "", "    ")
	if err != nil {
		return "<unprintable record>"
	}
	return string(data)
}

// Has reports whether key is present
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Type returns the record's "type" field, or "" if absent
func (r Record) Type() string {
	t, _ := r["type"].(string)
	return t
}

// Float returns a required number
func (r Record) Float(key string) (float64, error) {
	v, ok := r[key]
	if !ok {
		return 0, &ConfigError{Record: r, Field: key}
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &ConfigTypeError{Record: r, Field: key, Want: "a number"}
	}
	return f, nil
}

// FloatOr returns an optional number
func (r Record) FloatOr(key string, def float64) (float64, error) {
	if !r.Has(key) {
		return def, nil
	}
	return r.Float(key)
}

// Int returns a required whole number
func (r Record) Int(key string) (int, error) {
	f, err := r.Float(key)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, &ConfigTypeError{Record: r, Field: key, Want: "an integer"}
	}
	return int(f), nil
}

// IntOr returns an optional whole number
func (r Record) IntOr(key string, def int) (int, error) {
	if !r.Has(key) {
		return def, nil
	}
	return r.Int(key)
}

// Str returns a required string
func (r Record) Str(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", &ConfigError{Record: r, Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ConfigTypeError{Record: r, Field: key, Want: "a string"}
	}
	return s, nil
}

// Vec3 returns a required color or vector: a single number is splatted
// across all three components
func (r Record) Vec3(key string) (core.Vec3, error) {
	v, ok := r[key]
	if !ok {
		return core.Vec3{}, &ConfigError{Record: r, Field: key}
	}
	vec, ok := asVec3(v)
	if !ok {
		return core.Vec3{}, &ConfigTypeError{Record: r, Field: key, Want: "a number or an array of 3 numbers"}
	}
	return vec, nil
}

// Vec3Or returns an optional color or vector
func (r Record) Vec3Or(key string, def core.Vec3) (core.Vec3, error) {
	if !r.Has(key) {
		return def, nil
	}
	return r.Vec3(key)
}

// Floats returns a required array of exactly n numbers
func (r Record) Floats(key string, n int) ([]float64, error) {
	v, ok := r[key]
	if !ok {
		return nil, &ConfigError{Record: r, Field: key}
	}
	values, ok := asFloats(v)
	if !ok || len(values) != n {
		return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of numbers of the right length"}
	}
	return values, nil
}

// Records returns an optional array of objects
func (r Record) Records(key string) ([]Record, error) {
	v, ok := r[key]
	if !ok {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of objects"}
	}
	records := make([]Record, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of objects"}
		}
		records[i] = Record(obj)
	}
	return records, nil
}

// Object returns a required nested object
func (r Record) Object(key string) (Record, error) {
	v, ok := r[key]
	if !ok {
		return nil, &ConfigError{Record: r, Field: key}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ConfigTypeError{Record: r, Field: key, Want: "an object"}
	}
	return Record(obj), nil
}

func asFloats(v any) ([]float64, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	values := make([]float64, len(list))
	for i, item := range list {
		f, ok := item.(float64)
		if !ok {
			return nil, false
		}
		values[i] = f
	}
	return values, true
}

func asVec3(v any) (core.Vec3, bool) {
	if f, ok := v.(float64); ok {
		return core.Splat(f), true
	}
	values, ok := asFloats(v)
	if !ok || len(values) != 3 {
		return core.Vec3{}, false
	}
	return core.NewVec3(values[0], values[1], values[2]), true
}
