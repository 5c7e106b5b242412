package fs

import "path/filepath"

// WalkDir walks the file tree rooted at root, calling fn for each entry.
func (f *realFS) WalkDir(root string, fn WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
