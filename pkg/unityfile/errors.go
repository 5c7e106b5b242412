package unityfile

import "errors"

// Error definitions for unityfile package.
var (
	ErrDocumentParse = errors.New("failed to parse serialized object document")
)
