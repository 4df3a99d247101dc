package scene

import "fmt"

// ConfigError reports a required field that is missing or holds an unusable value
type ConfigError struct {
	Record Record
	Field  string
	Reason string // empty when the field is missing
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %q (%s) here:\n%s", e.Field, e.Reason, e.Record)
	}
	return fmt.Sprintf("missing required field %q here:\n%s", e.Field, e.Record)
}

// ReferenceError reports a material name that was never declared
type ReferenceError struct {
	Name   string
	Record Record
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("can't find a material with name %q here:\n%s", e.Name, e.Record)
}

// ConfigTypeError reports a field whose JSON type does not match what is expected
type ConfigTypeError struct {
	Record Record
	Field  string
	Want   string
}

func (e *ConfigTypeError) Error() string {
	return fmt.Sprintf("type mismatch for %q: expecting %s here:\n%s", e.Field, e.Want, e.Record)
}
