package asset

// ObjectID identifies a live object in the currently open scene.
type ObjectID int64

// Reference records where one script is used: the prefabs and scenes whose
// dependency closure includes it, the sibling scripts whose code depends on
// it, and the live objects carrying it in the currently open scene.
type Reference struct {
	Script             Script
	ContainingPrefabs  map[GUID]Container
	ContainingScenes   map[GUID]Container
	AttachedObjects    map[ObjectID]string
	ReferencingScripts map[GUID]Script
}

// NewReference creates an empty reference record for the given script.
func NewReference(script Script) *Reference {
	return &Reference{
		Script:             script,
		ContainingPrefabs:  make(map[GUID]Container),
		ContainingScenes:   make(map[GUID]Container),
		AttachedObjects:    make(map[ObjectID]string),
		ReferencingScripts: make(map[GUID]Script),
	}
}

// AddContainer records the container in the set matching its kind.
func (r *Reference) AddContainer(container Container) {
	switch {
	case container.IsPrefab():
		r.ContainingPrefabs[container.GUID] = container
	case container.IsScene():
		r.ContainingScenes[container.GUID] = container
	}
}

// AddReferencingScript records a script whose code depends on the subject.
// The subject itself is never recorded (the referencing set is irreflexive).
func (r *Reference) AddReferencingScript(script Script) {
	if script.GUID == r.Script.GUID {
		return
	}
	r.ReferencingScripts[script.GUID] = script
}

// AddAttachedObject records a live scene object carrying the subject script.
func (r *Reference) AddAttachedObject(id ObjectID, name string) {
	r.AttachedObjects[id] = name
}

// IsUnused reports whether no prefab and no scene depends on the script.
// Attached objects and sibling-code references do not count: a script only
// reachable from code is still unused in the serialized project.
func (r *Reference) IsUnused() bool {
	return len(r.ContainingPrefabs) == 0 && len(r.ContainingScenes) == 0
}

// IsReferencedBySiblingCode reports whether any other script's compiled
// dependency closure includes the subject.
func (r *Reference) IsReferencedBySiblingCode() bool {
	return len(r.ReferencingScripts) > 0
}
