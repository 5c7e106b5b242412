// Package scriptscan provides the scanning facade the presentation layer
// drives: refresh the usage index, clear it, filter it.
package scriptscan

import (
	"fmt"

	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/dependencies"
	"github.com/avral/scriptscan/pkg/logger"
	"github.com/avral/scriptscan/pkg/usageindex"
)

// ScriptScanner interface provides unused-script detection for a project.
type ScriptScanner interface {
	// Refresh re-runs the whole scan and replaces all held state.
	Refresh() (usageindex.Index, error)
	// Clear discards all held state.
	Clear()
	// LastIndex returns the index produced by the most recent Refresh,
	// or nil after Clear or before the first Refresh.
	LastIndex() usageindex.Index
	// References returns the last index's records ordered by script path,
	// honoring the unused-only display filter.
	References() []*asset.Reference
	// SetUnusedOnly sets the display filter.
	SetUnusedOnly(unusedOnly bool)
	// UnusedOnly returns the display filter.
	UnusedOnly() bool
	// SetLogger sets the logger for this scanner instance.
	SetLogger(logger logger.Logger)
}

// toolState is the presentation-facing state, replaced wholesale on each
// action.
type toolState struct {
	lastIndex  usageindex.Index
	unusedOnly bool
}

type realScriptScanner struct {
	deps  *dependencies.Dependencies
	state toolState
}

// NewScriptScannerParams contains parameters for creating a new ScriptScanner instance.
type NewScriptScannerParams struct {
	Dependencies *dependencies.Dependencies
}

// NewScriptScanner creates a new ScriptScanner instance.
func NewScriptScanner(params NewScriptScannerParams) (ScriptScanner, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &realScriptScanner{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (s *realScriptScanner) VerbosePrint(msg string, args ...interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// SetLogger sets the logger for this ScriptScanner instance.
func (s *realScriptScanner) SetLogger(logger logger.Logger) {
	s.deps.Logger = logger
}

// LastIndex returns the index produced by the most recent Refresh.
func (s *realScriptScanner) LastIndex() usageindex.Index {
	return s.state.lastIndex
}

// SetUnusedOnly sets the display filter.
func (s *realScriptScanner) SetUnusedOnly(unusedOnly bool) {
	s.state.unusedOnly = unusedOnly
}

// UnusedOnly returns the display filter.
func (s *realScriptScanner) UnusedOnly() bool {
	return s.state.unusedOnly
}

// runGuarded executes an operation with a panic guard so a failure in one
// scan can never take down the host surface.
func (s *realScriptScanner) runGuarded(operationName string, operation func() error) (resultErr error) {
	defer func() {
		if r := recover(); r != nil {
			resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
		}
	}()
	return operation()
}
