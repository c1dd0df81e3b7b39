package product

import "fmt"

// ConfigurationError reports a Configuration that cannot be turned into a
// scene: an unknown catalog id, an unknown variant or a non-positive dimension.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func unknownID(field, id string) error {
	return &ConfigurationError{Field: field, Value: id, Reason: "not found in catalog"}
}
