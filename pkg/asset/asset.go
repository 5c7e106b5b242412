// Package asset defines the data model shared by the catalog, the usage
// index and the host adapters.
package asset

// GUID identifies an asset. Identity is stable for the duration of one
// scan; no cross-scan guarantee is made.
type GUID string

// Kind discriminates the asset categories the scanner cares about.
type Kind string

// Asset kinds.
const (
	KindScript Kind = "script"
	KindPrefab Kind = "prefab"
	KindScene  Kind = "scene"
)

// Language tags the dialect a script asset is written in.
type Language string

// Script dialects historically supported by the editor.
const (
	LanguageCSharp     Language = "csharp"
	LanguageJavaScript Language = "javascript"
	LanguageBoo        Language = "boo"
)

// Ref is the opaque identity of one project asset.
type Ref struct {
	Path string
	GUID GUID
	Kind Kind
}

// Script is a script asset together with the metadata the catalog needs.
type Script struct {
	Ref
	ClassName string
	Language  Language
	// BaseTypes lists the type names the declared class extends or
	// implements, as written in the source.
	BaseTypes []string
	// IsBehaviour is true when the class the script defines is attachable
	// to scene objects, as opposed to a plain data or utility class.
	IsBehaviour bool
}

// Container is a scene or prefab asset.
type Container struct {
	Ref
}

// IsScene reports whether the container is a scene asset.
func (c Container) IsScene() bool {
	return c.Kind == KindScene
}

// IsPrefab reports whether the container is a prefab asset.
func (c Container) IsPrefab() bool {
	return c.Kind == KindPrefab
}
