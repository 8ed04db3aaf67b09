// Package render holds dialect plumbing shared by the compiler and the
// dialect packages: capability descriptions and capability errors.
package render

import (
	"errors"
	"fmt"
)

// UnsupportedFeatureError indicates a construct the target dialect cannot express.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// IsUnsupportedFeature reports whether err is or wraps an UnsupportedFeatureError.
func IsUnsupportedFeature(err error) bool {
	var ufErr UnsupportedFeatureError
	return errors.As(err, &ufErr)
}
