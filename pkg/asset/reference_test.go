//go:build unit

package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scriptFixture(guid GUID) Script {
	return Script{
		Ref:         Ref{Path: "Assets/Scripts/" + string(guid) + ".cs", GUID: guid, Kind: KindScript},
		ClassName:   string(guid),
		Language:    LanguageCSharp,
		IsBehaviour: true,
	}
}

func TestNewReference_EmptySets(t *testing.T) {
	ref := NewReference(scriptFixture("a"))

	assert.True(t, ref.IsUnused())
	assert.False(t, ref.IsReferencedBySiblingCode())
	assert.Empty(t, ref.ContainingPrefabs)
	assert.Empty(t, ref.ContainingScenes)
	assert.Empty(t, ref.AttachedObjects)
	assert.Empty(t, ref.ReferencingScripts)
}

func TestAddContainer_RoutesByKind(t *testing.T) {
	ref := NewReference(scriptFixture("a"))

	prefab := Container{Ref: Ref{Path: "Assets/Player.prefab", GUID: "p1", Kind: KindPrefab}}
	scene := Container{Ref: Ref{Path: "Assets/Main.unity", GUID: "s1", Kind: KindScene}}

	ref.AddContainer(prefab)
	ref.AddContainer(scene)

	assert.Equal(t, map[GUID]Container{"p1": prefab}, ref.ContainingPrefabs)
	assert.Equal(t, map[GUID]Container{"s1": scene}, ref.ContainingScenes)
	assert.False(t, ref.IsUnused())
}

func TestAddContainer_DeduplicatesByGUID(t *testing.T) {
	ref := NewReference(scriptFixture("a"))
	prefab := Container{Ref: Ref{Path: "Assets/Player.prefab", GUID: "p1", Kind: KindPrefab}}

	ref.AddContainer(prefab)
	ref.AddContainer(prefab)

	assert.Len(t, ref.ContainingPrefabs, 1)
}

func TestAddReferencingScript_ExcludesSelf(t *testing.T) {
	subject := scriptFixture("a")
	ref := NewReference(subject)

	ref.AddReferencingScript(subject)
	assert.Empty(t, ref.ReferencingScripts)

	other := scriptFixture("b")
	ref.AddReferencingScript(other)
	assert.Equal(t, map[GUID]Script{"b": other}, ref.ReferencingScripts)
	assert.True(t, ref.IsReferencedBySiblingCode())

	// Sibling-code references alone do not make a script used.
	assert.True(t, ref.IsUnused())
}

func TestAddAttachedObject(t *testing.T) {
	ref := NewReference(scriptFixture("a"))

	ref.AddAttachedObject(42, "Player")
	ref.AddAttachedObject(42, "Player")

	assert.Equal(t, map[ObjectID]string{42: "Player"}, ref.AttachedObjects)
	// Attachment in the open scene does not count as serialized usage.
	assert.True(t, ref.IsUnused())
}

func TestContainerKindPredicates(t *testing.T) {
	prefab := Container{Ref: Ref{GUID: "p", Kind: KindPrefab}}
	scene := Container{Ref: Ref{GUID: "s", Kind: KindScene}}

	assert.True(t, prefab.IsPrefab())
	assert.False(t, prefab.IsScene())
	assert.True(t, scene.IsScene())
	assert.False(t, scene.IsPrefab())
}
