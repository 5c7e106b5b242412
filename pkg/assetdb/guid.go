package assetdb

import (
	"crypto/md5"
	"encoding/hex"

	"gopkg.in/yaml.v3"

	"github.com/avral/scriptscan/pkg/asset"
)

// metaSidecar is the subset of a .meta file the store reads.
type metaSidecar struct {
	GUID string `yaml:"guid"`
}

// resolveGUID reads the asset's .meta sidecar for its GUID. A missing or
// unparseable sidecar falls back to a path-derived synthetic GUID, keeping
// identity stable for the duration of the scan.
func (s *realStore) resolveGUID(absPath, relPath string) asset.GUID {
	data, err := s.fs.ReadFile(absPath + ".meta")
	if err == nil {
		var meta metaSidecar
		if yaml.Unmarshal(data, &meta) == nil && meta.GUID != "" {
			return asset.GUID(meta.GUID)
		}
	}

	return syntheticGUID(relPath)
}

// syntheticGUID derives a stable placeholder GUID from the asset path.
func syntheticGUID(relPath string) asset.GUID {
	sum := md5.Sum([]byte(relPath))
	return asset.GUID(hex.EncodeToString(sum[:]))
}
