package scriptscan

import (
	"fmt"
	"sort"

	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/assetdb"
	"github.com/avral/scriptscan/pkg/catalog"
	"github.com/avral/scriptscan/pkg/closure"
	"github.com/avral/scriptscan/pkg/scene"
	"github.com/avral/scriptscan/pkg/usageindex"
)

// Refresh re-runs the whole scan end to end and replaces all held state.
// Individual unreadable assets and unresolvable closures degrade by
// omission; Refresh fails only on environment-level problems such as an
// unreadable project directory.
func (s *realScriptScanner) Refresh() (usageindex.Index, error) {
	var index usageindex.Index

	err := s.runGuarded("refresh", func() error {
		built, err := s.performRefresh()
		if err != nil {
			return err
		}
		index = built
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.state.lastIndex = index
	return index, nil
}

// performRefresh runs catalog, usage index and attachment passes.
func (s *realScriptScanner) performRefresh() (usageindex.Index, error) {
	cfg, err := s.deps.Config.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	s.VerbosePrint("Scanning project %s", cfg.ProjectDir)

	store := s.deps.StoreProvider(assetdb.NewStoreParams{
		FS:         s.deps.FS,
		Logger:     s.deps.Logger,
		ProjectDir: cfg.ProjectDir,
		IgnoreFile: cfg.IgnoreFile,
	})

	builder := catalog.NewBuilder(catalog.NewBuilderParams{
		Store:  store,
		Logger: s.deps.Logger,
	})

	scripts, err := builder.ListScriptAssets()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	containers, err := builder.ListContainerAssets()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	provider, err := s.deps.ClosureProvider(closure.NewProviderParams{
		Store:   store,
		Scripts: scripts,
		Logger:  s.deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create closure provider: %w", err)
	}

	index, stats := usageindex.Build(scripts, containers, provider.ClosureOf)
	s.VerbosePrint("Indexed %d scripts against %d containers (%d roots skipped)",
		stats.Scripts, stats.Containers, stats.SkippedRoots)

	graph := s.deps.GraphProvider(scene.NewGraphParams{
		FS:        s.deps.FS,
		Logger:    s.deps.Logger,
		ScenePath: cfg.OpenScene,
	})
	attachments, err := graph.Attachments()
	if err != nil {
		// Best-effort pass: a failing open scene never fails the scan.
		s.VerbosePrint("Attachment pass skipped: %v", err)
	} else {
		usageindex.Attach(index, attachments)
	}

	return index, nil
}

// References returns the last index's records ordered by script path,
// honoring the unused-only display filter.
func (s *realScriptScanner) References() []*asset.Reference {
	refs := make([]*asset.Reference, 0, len(s.state.lastIndex))
	for _, ref := range s.state.lastIndex {
		if s.state.unusedOnly && !ref.IsUnused() {
			continue
		}
		refs = append(refs, ref)
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Script.Path < refs[j].Script.Path
	})

	return refs
}
