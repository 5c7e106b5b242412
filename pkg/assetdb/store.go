// Package assetdb implements the filesystem-backed asset store the scanner
// reads the project through.
package assetdb

import (
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/fs"
	"github.com/avral/scriptscan/pkg/logger"
	"github.com/avral/scriptscan/pkg/sourcecode"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=store.go -destination=mocks/store.gen.go -package=mocks

// Store interface provides read-only access to the project's assets.
type Store interface {
	// ListAssets returns every script, prefab and scene asset in the
	// project, ordered by path. The first call walks the project tree and
	// builds the GUID index; later calls return the indexed result.
	ListAssets() ([]asset.Ref, error)

	// LoadScript loads the script metadata (class name, language, base
	// types, behaviour flag) for a script asset.
	LoadScript(ref asset.Ref) (asset.Script, error)

	// ReadAsset returns the raw serialized content of an asset.
	ReadAsset(ref asset.Ref) ([]byte, error)

	// LookupGUID resolves a GUID to its asset. Only GUIDs indexed by
	// ListAssets resolve; everything else reports false.
	LookupGUID(guid asset.GUID) (asset.Ref, bool)
}

// realStore reads assets from the project directory.
type realStore struct {
	fs         fs.FS
	logger     logger.Logger
	projectDir string
	ignoreFile string

	matcher *ignore.GitIgnore
	index   map[asset.GUID]asset.Ref
	assets  []asset.Ref
	listed  bool

	parser *sourcecode.Parser
}

// NewStoreParams contains parameters for creating a new Store instance.
type NewStoreParams struct {
	FS         fs.FS
	Logger     logger.Logger
	ProjectDir string
	IgnoreFile string
}

// NewStore creates a new Store instance for the given project directory.
func NewStore(params NewStoreParams) Store {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &realStore{
		fs:         params.FS,
		logger:     params.Logger,
		projectDir: params.ProjectDir,
		ignoreFile: params.IgnoreFile,
		index:      make(map[asset.GUID]asset.Ref),
		parser:     sourcecode.NewParser(),
	}
}
