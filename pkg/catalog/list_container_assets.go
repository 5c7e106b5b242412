package catalog

import (
	"fmt"

	"github.com/avral/scriptscan/pkg/asset"
)

// ListContainerAssets returns every scene and prefab asset in the project.
func (b *realBuilder) ListContainerAssets() ([]asset.Container, error) {
	refs, err := b.store.ListAssets()
	if err != nil {
		return nil, fmt.Errorf("failed to list project assets: %w", err)
	}

	var containers []asset.Container
	for _, ref := range refs {
		if ref.Kind == asset.KindPrefab || ref.Kind == asset.KindScene {
			containers = append(containers, asset.Container{Ref: ref})
		}
	}

	b.logger.Logf("Catalog holds %d containers", len(containers))
	return containers, nil
}
