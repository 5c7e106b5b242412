//go:build unit

package scriptscan

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/assetdb"
	storemocks "github.com/avral/scriptscan/pkg/assetdb/mocks"
	"github.com/avral/scriptscan/pkg/closure"
	"github.com/avral/scriptscan/pkg/config"
	configmocks "github.com/avral/scriptscan/pkg/config/mocks"
	"github.com/avral/scriptscan/pkg/dependencies"
	"github.com/avral/scriptscan/pkg/scene"
	scenemocks "github.com/avral/scriptscan/pkg/scene/mocks"
)

var (
	alphaRef = asset.Ref{Path: "Assets/Alpha.cs", GUID: "a", Kind: asset.KindScript}
	betaRef  = asset.Ref{Path: "Assets/Beta.cs", GUID: "b", Kind: asset.KindScript}
	gammaRef = asset.Ref{Path: "Assets/Gamma.cs", GUID: "c", Kind: asset.KindScript}
	prefabP  = asset.Ref{Path: "Assets/P.prefab", GUID: "p", Kind: asset.KindPrefab}
	sceneSc  = asset.Ref{Path: "Assets/Sc.unity", GUID: "sc", Kind: asset.KindScene}
)

func behaviourScript(ref asset.Ref, class string) asset.Script {
	return asset.Script{
		Ref: ref, ClassName: class, Language: asset.LanguageCSharp,
		BaseTypes: []string{"MonoBehaviour"}, IsBehaviour: true,
	}
}

// fakeClosureProvider serves closures from a fixed table.
type fakeClosureProvider struct {
	table map[asset.GUID]map[asset.GUID]struct{}
}

func (f fakeClosureProvider) ClosureOf(root asset.Ref) (map[asset.GUID]struct{}, error) {
	return f.table[root.GUID], nil
}

func newTestScanner(t *testing.T, ctrl *gomock.Controller,
	table map[asset.GUID]map[asset.GUID]struct{},
	attachments []asset.Attachment,
) ScriptScanner {
	t.Helper()

	mockStore := storemocks.NewMockStore(ctrl)
	mockStore.EXPECT().ListAssets().Return([]asset.Ref{
		alphaRef, betaRef, gammaRef, prefabP, sceneSc,
	}, nil).AnyTimes()
	mockStore.EXPECT().LoadScript(alphaRef).Return(behaviourScript(alphaRef, "Alpha"), nil).AnyTimes()
	mockStore.EXPECT().LoadScript(betaRef).Return(behaviourScript(betaRef, "Beta"), nil).AnyTimes()
	mockStore.EXPECT().LoadScript(gammaRef).Return(behaviourScript(gammaRef, "Gamma"), nil).AnyTimes()

	mockGraph := scenemocks.NewMockGraph(ctrl)
	mockGraph.EXPECT().Attachments().Return(attachments, nil).AnyTimes()

	deps := dependencies.New().
		WithConfig(config.NewManager(filepath.Join(t.TempDir(), "missing.yaml"))).
		WithStoreProvider(func(assetdb.NewStoreParams) assetdb.Store { return mockStore }).
		WithClosureProvider(func(closure.NewProviderParams) (closure.Provider, error) {
			return fakeClosureProvider{table: table}, nil
		}).
		WithGraphProvider(func(scene.NewGraphParams) scene.Graph { return mockGraph })

	scanner, err := NewScriptScanner(NewScriptScannerParams{Dependencies: deps})
	require.NoError(t, err)
	return scanner
}

func scenarioTable() map[asset.GUID]map[asset.GUID]struct{} {
	return map[asset.GUID]map[asset.GUID]struct{}{
		"p":  {"a": {}},
		"sc": {"b": {}},
		"a":  {"b": {}},
	}
}

func TestRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := newTestScanner(t, ctrl, scenarioTable(), []asset.Attachment{
		{ObjectID: 10, ObjectName: "Player", ScriptGUID: "a"},
	})

	index, err := scanner.Refresh()
	require.NoError(t, err)
	require.Len(t, index, 3)

	assert.False(t, index["a"].IsUnused())
	assert.Contains(t, index["a"].ContainingPrefabs, asset.GUID("p"))
	assert.Equal(t, map[asset.ObjectID]string{10: "Player"}, index["a"].AttachedObjects)

	assert.False(t, index["b"].IsUnused())
	assert.Contains(t, index["b"].ContainingScenes, asset.GUID("sc"))
	assert.Contains(t, index["b"].ReferencingScripts, asset.GUID("a"))

	assert.True(t, index["c"].IsUnused())

	assert.Equal(t, index, scanner.LastIndex())
}

func TestRefresh_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := newTestScanner(t, ctrl, scenarioTable(), nil)

	first, err := scanner.Refresh()
	require.NoError(t, err)
	second, err := scanner.Refresh()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClearThenRefresh_EqualsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := newTestScanner(t, ctrl, scenarioTable(), nil)

	baseline, err := scanner.Refresh()
	require.NoError(t, err)

	scanner.Clear()
	assert.Nil(t, scanner.LastIndex())
	assert.Empty(t, scanner.References())

	again, err := scanner.Refresh()
	require.NoError(t, err)
	assert.Equal(t, baseline, again)
}

func TestRefresh_ConfigFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConfig := configmocks.NewMockManager(ctrl)
	mockConfig.EXPECT().GetConfigWithFallback().
		Return(config.Config{}, errors.New("home dir unresolvable"))

	deps := dependencies.New().WithConfig(mockConfig)

	scanner, err := NewScriptScanner(NewScriptScannerParams{Dependencies: deps})
	require.NoError(t, err)

	_, err = scanner.Refresh()
	assert.Error(t, err)
	assert.Nil(t, scanner.LastIndex())
}

func TestRefresh_CatalogFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storemocks.NewMockStore(ctrl)
	mockStore.EXPECT().ListAssets().Return(nil, errors.New("project dir unreadable")).AnyTimes()

	deps := dependencies.New().
		WithConfig(config.NewManager(filepath.Join(t.TempDir(), "missing.yaml"))).
		WithStoreProvider(func(assetdb.NewStoreParams) assetdb.Store { return mockStore })

	scanner, err := NewScriptScanner(NewScriptScannerParams{Dependencies: deps})
	require.NoError(t, err)

	_, err = scanner.Refresh()
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Nil(t, scanner.LastIndex())
}

func TestReferences_UnusedOnlyFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := newTestScanner(t, ctrl, scenarioTable(), nil)

	_, err := scanner.Refresh()
	require.NoError(t, err)

	all := scanner.References()
	require.Len(t, all, 3)
	// Ordered by script path.
	assert.Equal(t, "Assets/Alpha.cs", all[0].Script.Path)
	assert.Equal(t, "Assets/Beta.cs", all[1].Script.Path)
	assert.Equal(t, "Assets/Gamma.cs", all[2].Script.Path)

	scanner.SetUnusedOnly(true)
	assert.True(t, scanner.UnusedOnly())

	unused := scanner.References()
	require.Len(t, unused, 1)
	assert.Equal(t, "Assets/Gamma.cs", unused[0].Script.Path)
}

func TestNewScriptScanner_InvalidDependencies(t *testing.T) {
	deps := dependencies.New() // no config

	_, err := NewScriptScanner(NewScriptScannerParams{Dependencies: deps})
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}
