package attrs

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("attrs: invalid configuration")
	// ErrDepthExceeded is returned when a value nests deeper than the
	// configured maximum depth.
	ErrDepthExceeded = errors.New("attrs: maximum nesting depth exceeded")
)

// ConfigurationError reports attribute input that cannot be rendered, such as
// style properties given as a list instead of a mapping.
type ConfigurationError struct {
	Attribute string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("attrs: %s", e.Reason)
	}
	return fmt.Sprintf("attrs: %s: %s", e.Attribute, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
