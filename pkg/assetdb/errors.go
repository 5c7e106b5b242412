package assetdb

import "errors"

// Error definitions for assetdb package.
var (
	// Asset loading errors.
	ErrAssetLoad = errors.New("failed to load asset")
)
