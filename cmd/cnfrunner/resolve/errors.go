package resolve

import (
	"errors"
	"fmt"
)

// ErrResolution is the single category every resolver failure belongs to.
// Callers distinguish failures by message, not by type.
var ErrResolution = errors.New("resolution failed")

// fail builds a resolver error in the phase=<phase> path=<path> format.
func fail(phase, path, format string, args ...any) error {
	return fmt.Errorf("phase=%s path=%s: %w: %s", phase, path, ErrResolution, fmt.Sprintf(format, args...))
}
