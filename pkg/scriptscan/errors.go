package scriptscan

import "errors"

// Error definitions for scriptscan package.
var (
	ErrCatalogUnavailable = errors.New("failed to build asset catalog")
)
