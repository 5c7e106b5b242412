// Package closure computes transitive dependency closures over the asset
// store. It is the oracle the usage index intersects against.
package closure

import (
	"fmt"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/assetdb"
	"github.com/avral/scriptscan/pkg/logger"
	"github.com/avral/scriptscan/pkg/sourcecode"
	"github.com/avral/scriptscan/pkg/unityfile"
)

// directCacheSize bounds the per-scan memo of direct reference sets.
const directCacheSize = 4096

// Provider computes the transitive dependency closure of an asset.
type Provider interface {
	// ClosureOf returns the GUIDs of every asset the root transitively
	// depends on. The root itself is never part of the result.
	ClosureOf(root asset.Ref) (map[asset.GUID]struct{}, error)
}

// realProvider resolves closures against the store, memoizing direct
// reference sets for the lifetime of the provider (one scan).
type realProvider struct {
	store   assetdb.Store
	logger  logger.Logger
	parser  *sourcecode.Parser
	scripts map[asset.GUID]asset.Script
	classes map[string]asset.GUID
	direct  *lru.Cache[asset.GUID, []asset.GUID]
}

// NewProviderParams contains parameters for creating a new Provider instance.
type NewProviderParams struct {
	Store assetdb.Store
	// Scripts is the script catalog; identifiers in script sources are
	// matched against its class names.
	Scripts []asset.Script
	Logger  logger.Logger
}

// NewProvider creates a new Provider instance scoped to one scan.
func NewProvider(params NewProviderParams) (Provider, error) {
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	cache, err := lru.New[asset.GUID, []asset.GUID](directCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create reference cache: %w", err)
	}

	scripts := make(map[asset.GUID]asset.Script, len(params.Scripts))
	classes := make(map[string]asset.GUID, len(params.Scripts))
	for _, script := range params.Scripts {
		scripts[script.GUID] = script
		classes[script.ClassName] = script.GUID
	}

	return &realProvider{
		store:   params.Store,
		logger:  params.Logger,
		parser:  sourcecode.NewParser(),
		scripts: scripts,
		classes: classes,
		direct:  cache,
	}, nil
}

// ClosureOf returns the GUIDs of every asset the root transitively depends on.
func (p *realProvider) ClosureOf(root asset.Ref) (map[asset.GUID]struct{}, error) {
	queue, err := p.directReferences(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrClosureUnavailable, root.Path, err)
	}

	closure := make(map[asset.GUID]struct{})
	for len(queue) > 0 {
		guid := queue[0]
		queue = queue[1:]

		if guid == root.GUID {
			continue
		}
		if _, seen := closure[guid]; seen {
			continue
		}
		closure[guid] = struct{}{}

		ref, ok := p.store.LookupGUID(guid)
		if !ok {
			// Assets outside the index (textures, materials) stay in the
			// closure but cannot be walked further.
			continue
		}
		if !walkable(root, ref) {
			continue
		}

		next, err := p.directReferences(ref)
		if err != nil {
			// A broken asset deep in the graph drops only its own
			// contribution.
			p.logger.Logf("Skipping unresolvable dependency %s: %v", ref.Path, err)
			continue
		}
		queue = append(queue, next...)
	}

	return closure, nil
}

// walkable reports whether the walk may recurse from root into ref. A
// script root follows the code reference graph; a container root follows
// the serialized reference graph. Scripts reached from a container are part
// of its closure but their code references are not.
func walkable(root, ref asset.Ref) bool {
	if root.Kind == asset.KindScript {
		return ref.Kind == asset.KindScript
	}
	return ref.Kind == asset.KindPrefab || ref.Kind == asset.KindScene
}

// directReferences returns the GUIDs an asset references directly.
func (p *realProvider) directReferences(ref asset.Ref) ([]asset.GUID, error) {
	if cached, ok := p.direct.Get(ref.GUID); ok {
		return cached, nil
	}

	var refs []asset.GUID
	var err error
	switch ref.Kind {
	case asset.KindScript:
		refs, err = p.scriptReferences(ref)
	case asset.KindPrefab, asset.KindScene:
		refs, err = p.containerReferences(ref)
	default:
		return nil, fmt.Errorf("unsupported asset kind %q", ref.Kind)
	}
	if err != nil {
		return nil, err
	}

	p.direct.Add(ref.GUID, refs)
	return refs, nil
}

// containerReferences extracts every GUID a serialized container mentions.
func (p *realProvider) containerReferences(ref asset.Ref) ([]asset.GUID, error) {
	content, err := p.store.ReadAsset(ref)
	if err != nil {
		return nil, err
	}
	return unityfile.GUIDs(content)
}

// scriptReferences maps identifiers in the script source to catalog scripts.
func (p *realProvider) scriptReferences(ref asset.Ref) ([]asset.GUID, error) {
	content, err := p.store.ReadAsset(ref)
	if err != nil {
		return nil, err
	}

	script, ok := p.scripts[ref.GUID]
	language := asset.LanguageCSharp
	if ok {
		language = script.Language
	} else {
		if l, known := languageForPath(ref.Path); known {
			language = l
		}
	}

	idents, err := p.parser.Identifiers(language, content)
	if err != nil {
		return nil, err
	}

	var refs []asset.GUID
	for ident := range idents {
		guid, ok := p.classes[ident]
		if !ok || guid == ref.GUID {
			continue
		}
		refs = append(refs, guid)
	}
	return refs, nil
}

func languageForPath(path string) (asset.Language, bool) {
	switch filepath.Ext(path) {
	case ".cs":
		return asset.LanguageCSharp, true
	case ".js":
		return asset.LanguageJavaScript, true
	case ".boo":
		return asset.LanguageBoo, true
	default:
		return "", false
	}
}
