// Package dependencies provides a centralized dependency container for the
// scriptscan application. This package follows Go idioms for dependency
// injection by grouping related dependencies together and providing a
// fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/avral/scriptscan/pkg/assetdb"
	"github.com/avral/scriptscan/pkg/closure"
	"github.com/avral/scriptscan/pkg/config"
	"github.com/avral/scriptscan/pkg/fs"
	"github.com/avral/scriptscan/pkg/logger"
	"github.com/avral/scriptscan/pkg/scene"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing              = errors.New("fs dependency is required but not set")
	ErrConfigMissing          = errors.New("config dependency is required but not set")
	ErrLoggerMissing          = errors.New("logger dependency is required but not set")
	ErrStoreProviderMissing   = errors.New("store provider dependency is required but not set")
	ErrClosureProviderMissing = errors.New("closure provider dependency is required but not set")
	ErrGraphProviderMissing   = errors.New("graph provider dependency is required but not set")
)

// StoreProvider creates the asset store for one scan.
type StoreProvider func(params assetdb.NewStoreParams) assetdb.Store

// ClosureProvider creates the dependency-closure provider for one scan.
type ClosureProvider func(params closure.NewProviderParams) (closure.Provider, error)

// GraphProvider creates the open-scene graph for one scan.
type GraphProvider func(params scene.NewGraphParams) scene.Graph

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS              fs.FS
	Config          config.Manager
	Logger          logger.Logger
	StoreProvider   StoreProvider
	ClosureProvider ClosureProvider
	GraphProvider   GraphProvider
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	return &Dependencies{
		FS:              fs.NewFS(),
		Logger:          logger.NewNoopLogger(),
		StoreProvider:   assetdb.NewStore,
		ClosureProvider: closure.NewProvider,
		GraphProvider:   scene.NewGraph,
		// Note: Config is intentionally left nil as it requires a config
		// path and is set via WithConfig
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithStoreProvider sets the store provider and returns the instance for chaining.
func (d *Dependencies) WithStoreProvider(sp StoreProvider) *Dependencies {
	d.StoreProvider = sp
	return d
}

// WithClosureProvider sets the closure provider and returns the instance for chaining.
func (d *Dependencies) WithClosureProvider(cp ClosureProvider) *Dependencies {
	d.ClosureProvider = cp
	return d
}

// WithGraphProvider sets the graph provider and returns the instance for chaining.
func (d *Dependencies) WithGraphProvider(gp GraphProvider) *Dependencies {
	d.GraphProvider = gp
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}

	// Provider funcs need explicit nil checks; a nil func wrapped in an
	// interface value is not a nil interface.
	if d.StoreProvider == nil {
		return ErrStoreProviderMissing
	}
	if d.ClosureProvider == nil {
		return ErrClosureProviderMissing
	}
	if d.GraphProvider == nil {
		return ErrGraphProviderMissing
	}
	return nil
}
