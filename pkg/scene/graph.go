// Package scene enumerates the components attached to objects in the
// currently open scene.
package scene

import (
	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/fs"
	"github.com/avral/scriptscan/pkg/logger"
	"github.com/avral/scriptscan/pkg/unityfile"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=graph.go -destination=mocks/graph.gen.go -package=mocks

// Graph interface enumerates script components in the open scene.
type Graph interface {
	// Attachments returns one entry per script component instance in the
	// open scene. Best-effort: a missing or unparseable scene yields an
	// empty list, never an error the caller must handle beyond logging.
	Attachments() ([]asset.Attachment, error)
}

// realGraph reads the configured open scene file.
type realGraph struct {
	fs        fs.FS
	logger    logger.Logger
	scenePath string
}

// NewGraphParams contains parameters for creating a new Graph instance.
type NewGraphParams struct {
	FS        fs.FS
	Logger    logger.Logger
	ScenePath string
}

// NewGraph creates a new Graph instance over the given scene file.
func NewGraph(params NewGraphParams) Graph {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &realGraph{
		fs:        params.FS,
		logger:    params.Logger,
		scenePath: params.ScenePath,
	}
}

// gameObjectDoc is the subset of a GameObject document the graph reads.
type gameObjectDoc struct {
	GameObject struct {
		Name string `yaml:"m_Name"`
	} `yaml:"GameObject"`
}

// behaviourDoc is the subset of a MonoBehaviour document the graph reads.
type behaviourDoc struct {
	MonoBehaviour struct {
		GameObject struct {
			FileID int64 `yaml:"fileID"`
		} `yaml:"m_GameObject"`
		Script struct {
			GUID string `yaml:"guid"`
		} `yaml:"m_Script"`
	} `yaml:"MonoBehaviour"`
}

// Attachments returns one entry per script component instance in the open scene.
func (g *realGraph) Attachments() ([]asset.Attachment, error) {
	if g.scenePath == "" {
		return nil, nil
	}

	content, err := g.fs.ReadFile(g.scenePath)
	if err != nil {
		g.logger.Logf("Open scene %s not readable, skipping attachment pass", g.scenePath)
		return nil, nil
	}

	docs := unityfile.Split(content)

	// First pass: object names by file ID.
	names := make(map[int64]string)
	for _, doc := range docs {
		if doc.ClassID != unityfile.ClassGameObject {
			continue
		}
		var obj gameObjectDoc
		if err := doc.Decode(&obj); err != nil {
			g.logger.Logf("Skipping unparseable object %d in %s", doc.FileID, g.scenePath)
			continue
		}
		names[doc.FileID] = obj.GameObject.Name
	}

	// Second pass: behaviour components and their owners.
	var attachments []asset.Attachment
	for _, doc := range docs {
		if doc.ClassID != unityfile.ClassMonoBehaviour {
			continue
		}
		var component behaviourDoc
		if err := doc.Decode(&component); err != nil {
			g.logger.Logf("Skipping unparseable component %d in %s", doc.FileID, g.scenePath)
			continue
		}
		if component.MonoBehaviour.Script.GUID == "" {
			continue
		}
		ownerID := component.MonoBehaviour.GameObject.FileID
		attachments = append(attachments, asset.Attachment{
			ObjectID:   asset.ObjectID(ownerID),
			ObjectName: names[ownerID],
			ScriptGUID: asset.GUID(component.MonoBehaviour.Script.GUID),
		})
	}

	return attachments, nil
}
