package assetdb

import (
	"fmt"
	"path/filepath"

	"github.com/avral/scriptscan/pkg/asset"
)

// ReadAsset returns the raw serialized content of an asset.
func (s *realStore) ReadAsset(ref asset.Ref) ([]byte, error) {
	data, err := s.fs.ReadFile(filepath.Join(s.projectDir, filepath.FromSlash(ref.Path)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, ref.Path, err)
	}
	return data, nil
}
