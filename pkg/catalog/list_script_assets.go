package catalog

import (
	"fmt"

	"github.com/avral/scriptscan/pkg/asset"
)

// ListScriptAssets returns every attachable behaviour script in the project.
func (b *realBuilder) ListScriptAssets() ([]asset.Script, error) {
	refs, err := b.store.ListAssets()
	if err != nil {
		return nil, fmt.Errorf("failed to list project assets: %w", err)
	}

	// Load metadata for every script; unloadable scripts degrade by
	// omission rather than failing the scan.
	var loaded []asset.Script
	for _, ref := range refs {
		if ref.Kind != asset.KindScript {
			continue
		}
		script, err := b.store.LoadScript(ref)
		if err != nil {
			b.logger.Logf("Skipping script %s: %v", ref.Path, err)
			continue
		}
		loaded = append(loaded, script)
	}

	markTransitiveBehaviours(loaded)

	// ListAssets returns path order; filtering preserves it.
	scripts := make([]asset.Script, 0, len(loaded))
	for _, script := range loaded {
		if script.IsBehaviour {
			scripts = append(scripts, script)
		}
	}

	b.logger.Logf("Catalog holds %d behaviour scripts (%d scripts total)", len(scripts), len(loaded))
	return scripts, nil
}

// markTransitiveBehaviours flags scripts whose class extends another catalog
// script that is itself a behaviour. The engine attaches subclasses of
// behaviour subclasses just the same.
func markTransitiveBehaviours(scripts []asset.Script) {
	behaviourClasses := make(map[string]struct{})
	for _, script := range scripts {
		if script.IsBehaviour {
			behaviourClasses[script.ClassName] = struct{}{}
		}
	}

	for changed := true; changed; {
		changed = false
		for i := range scripts {
			if scripts[i].IsBehaviour {
				continue
			}
			for _, base := range scripts[i].BaseTypes {
				if _, ok := behaviourClasses[base]; ok {
					scripts[i].IsBehaviour = true
					behaviourClasses[scripts[i].ClassName] = struct{}{}
					changed = true
					break
				}
			}
		}
	}
}
