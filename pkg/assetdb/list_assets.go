package assetdb

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/avral/scriptscan/pkg/asset"
)

// Engine-generated directories that never hold source assets.
var skipDirs = map[string]struct{}{
	"Library":      {},
	"Temp":         {},
	"Logs":         {},
	"obj":          {},
	"Build":        {},
	"UserSettings": {},
}

// kindForExtension classifies an asset path by extension.
func kindForExtension(ext string) (asset.Kind, bool) {
	switch strings.ToLower(ext) {
	case ".cs", ".js", ".boo":
		return asset.KindScript, true
	case ".prefab":
		return asset.KindPrefab, true
	case ".unity":
		return asset.KindScene, true
	default:
		return "", false
	}
}

// ListAssets returns every script, prefab and scene asset in the project.
func (s *realStore) ListAssets() ([]asset.Ref, error) {
	if s.listed {
		return s.assets, nil
	}

	if err := s.loadIgnoreMatcher(); err != nil {
		return nil, err
	}

	var refs []asset.Ref
	err := s.fs.WalkDir(s.projectDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries degrade by omission.
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path == s.projectDir {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(s.projectDir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if s.matcher != nil && s.matcher.MatchesPath(rel) {
			return nil
		}

		kind, ok := kindForExtension(filepath.Ext(name))
		if !ok {
			return nil
		}

		refs = append(refs, asset.Ref{
			Path: rel,
			GUID: s.resolveGUID(path, rel),
			Kind: kind,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project directory: %w", err)
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Path < refs[j].Path
	})

	s.index = make(map[asset.GUID]asset.Ref, len(refs))
	for _, ref := range refs {
		s.index[ref.GUID] = ref
	}
	s.assets = refs
	s.listed = true

	s.logger.Logf("Indexed %d assets under %s", len(refs), s.projectDir)
	return refs, nil
}

// loadIgnoreMatcher compiles the configured ignore file, if any. A missing
// or unreadable ignore file disables pattern matching rather than failing.
func (s *realStore) loadIgnoreMatcher() error {
	if s.matcher != nil || s.ignoreFile == "" {
		return nil
	}

	data, err := s.fs.ReadFile(s.ignoreFile)
	if err != nil {
		s.logger.Logf("Ignore file %s not readable, scanning everything", s.ignoreFile)
		return nil
	}

	s.matcher = ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
	return nil
}
