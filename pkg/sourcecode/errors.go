package sourcecode

import "errors"

// Error definitions for sourcecode package.
var (
	ErrNoDeclaration = errors.New("source declares no class")
)
