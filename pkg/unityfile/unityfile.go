// Package unityfile reads the engine's serialized asset format: a YAML
// stream of object documents, each introduced by a `--- !u!<classID> &<fileID>`
// header the stock YAML parser cannot digest. Documents are split textually
// and their bodies handed to yaml.v3.
package unityfile

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/avral/scriptscan/pkg/asset"
)

// Object class IDs the scanner cares about.
const (
	ClassGameObject    = 1
	ClassMonoBehaviour = 114
)

// Document is one object document inside a serialized asset file.
type Document struct {
	ClassID int
	FileID  int64
	Body    []byte
}

var headerRe = regexp.MustCompile(`^--- !u!(\d+) &(-?\d+)`)

// Split breaks a serialized asset file into its object documents.
// Directive lines and content before the first header are dropped.
func Split(content []byte) []Document {
	var docs []Document
	var current *Document

	for _, line := range bytes.Split(content, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("%")) {
			continue
		}
		if m := headerRe.FindSubmatch(line); m != nil {
			classID, _ := strconv.Atoi(string(m[1]))
			fileID, _ := strconv.ParseInt(string(m[2]), 10, 64)
			docs = append(docs, Document{ClassID: classID, FileID: fileID})
			current = &docs[len(docs)-1]
			continue
		}
		if current != nil {
			current.Body = append(current.Body, line...)
			current.Body = append(current.Body, '\n')
		}
	}

	return docs
}

// Decode unmarshals the document body into out.
func (d Document) Decode(out interface{}) error {
	if err := yaml.Unmarshal(d.Body, out); err != nil {
		return fmt.Errorf("%w: object %d", ErrDocumentParse, d.FileID)
	}
	return nil
}

// GUIDs returns every asset GUID referenced anywhere in the file, in
// document order, without duplicates.
func GUIDs(content []byte) ([]asset.GUID, error) {
	var guids []asset.GUID
	seen := make(map[asset.GUID]struct{})

	for _, doc := range Split(content) {
		var node yaml.Node
		if err := yaml.Unmarshal(doc.Body, &node); err != nil {
			return nil, fmt.Errorf("%w: object %d", ErrDocumentParse, doc.FileID)
		}
		collectGUIDs(&node, seen, &guids)
	}

	return guids, nil
}

// collectGUIDs walks a YAML node tree and gathers the value of every
// mapping entry keyed "guid".
func collectGUIDs(node *yaml.Node, seen map[asset.GUID]struct{}, out *[]asset.GUID) {
	if node == nil {
		return
	}

	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind == yaml.ScalarNode && key.Value == "guid" && value.Kind == yaml.ScalarNode {
				guid := asset.GUID(value.Value)
				if _, ok := seen[guid]; !ok && guid != "" {
					seen[guid] = struct{}{}
					*out = append(*out, guid)
				}
				continue
			}
			collectGUIDs(value, seen, out)
		}
		return
	}

	for _, child := range node.Content {
		collectGUIDs(child, seen, out)
	}
}
