package assetdb

import "github.com/avral/scriptscan/pkg/asset"

// LookupGUID resolves a GUID to its asset.
func (s *realStore) LookupGUID(guid asset.GUID) (asset.Ref, bool) {
	ref, ok := s.index[guid]
	return ref, ok
}
