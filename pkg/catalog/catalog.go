// Package catalog enumerates the project's script and container assets.
package catalog

import (
	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/assetdb"
	"github.com/avral/scriptscan/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=catalog.go -destination=mocks/catalog.gen.go -package=mocks

// Builder interface provides the catalog of scripts and containers one scan
// operates on.
type Builder interface {
	// ListScriptAssets returns every attachable behaviour script in the
	// project, ordered by path. An empty project yields an empty slice.
	ListScriptAssets() ([]asset.Script, error)

	// ListContainerAssets returns every scene and prefab asset in the
	// project, ordered by path.
	ListContainerAssets() ([]asset.Container, error)
}

// realBuilder builds the catalog from the asset store.
type realBuilder struct {
	store  assetdb.Store
	logger logger.Logger
}

// NewBuilderParams contains parameters for creating a new Builder instance.
type NewBuilderParams struct {
	Store  assetdb.Store
	Logger logger.Logger
}

// NewBuilder creates a new Builder instance.
func NewBuilder(params NewBuilderParams) Builder {
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &realBuilder{
		store:  params.Store,
		logger: params.Logger,
	}
}
