package asset

// Attachment pairs a live object in the currently open scene with the GUID
// of a script component it carries.
type Attachment struct {
	ObjectID   ObjectID
	ObjectName string
	ScriptGUID GUID
}
