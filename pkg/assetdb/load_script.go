package assetdb

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avral/scriptscan/pkg/asset"
)

// Base types whose subclasses are attachable to scene objects.
var behaviourBases = map[string]struct{}{
	"MonoBehaviour":         {},
	"NetworkBehaviour":      {},
	"StateMachineBehaviour": {},
}

// languageForExtension maps a script extension to its dialect.
func languageForExtension(ext string) (asset.Language, bool) {
	switch strings.ToLower(ext) {
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

// LoadScript loads the script metadata for a script asset.
func (s *realStore) LoadScript(ref asset.Ref) (asset.Script, error) {
	if ref.Kind != asset.KindScript {
		return asset.Script{}, fmt.Errorf("%w: %s is not a script", ErrAssetLoad, ref.Path)
	}

	language, ok := languageForExtension(filepath.Ext(ref.Path))
	if !ok {
		return asset.Script{}, fmt.Errorf("%w: unknown script extension on %s", ErrAssetLoad, ref.Path)
	}

	script := asset.Script{
		Ref:       ref,
		ClassName: classNameFromPath(ref.Path),
		Language:  language,
	}

	if language != asset.LanguageCSharp {
		// The legacy dialects implicitly wrapped every file in a
		// behaviour class named after the file.
		script.IsBehaviour = true
		return script, nil
	}

	source, err := s.fs.ReadFile(filepath.Join(s.projectDir, filepath.FromSlash(ref.Path)))
	if err != nil {
		return asset.Script{}, fmt.Errorf("%w: %s: %w", ErrAssetLoad, ref.Path, err)
	}

	decl, err := s.parser.Declaration(source)
	if err != nil {
		return asset.Script{}, fmt.Errorf("%w: %s: %w", ErrAssetLoad, ref.Path, err)
	}

	script.ClassName = decl.ClassName
	script.BaseTypes = decl.BaseTypes
	for _, base := range decl.BaseTypes {
		if _, ok := behaviourBases[base]; ok {
			script.IsBehaviour = true
			break
		}
	}

	return script, nil
}

// classNameFromPath falls back to the file name as the class name, which is
// what the engine enforces for attachable scripts anyway.
func classNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
