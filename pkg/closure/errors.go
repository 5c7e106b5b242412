package closure

import "errors"

// Error definitions for closure package.
var (
	ErrClosureUnavailable = errors.New("failed to resolve dependency closure")
)
