//go:build unit

package closure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/assetdb/mocks"
)

var (
	alphaRef  = asset.Ref{Path: "Assets/Alpha.cs", GUID: "aaaa", Kind: asset.KindScript}
	betaRef   = asset.Ref{Path: "Assets/Beta.cs", GUID: "bbbb", Kind: asset.KindScript}
	crateRef  = asset.Ref{Path: "Assets/Crate.prefab", GUID: "pppp", Kind: asset.KindPrefab}
	mainScene = asset.Ref{Path: "Assets/Main.unity", GUID: "ssss", Kind: asset.KindScene}
)

func catalogScripts() []asset.Script {
	return []asset.Script{
		{Ref: alphaRef, ClassName: "Alpha", Language: asset.LanguageCSharp, IsBehaviour: true},
		{Ref: betaRef, ClassName: "Beta", Language: asset.LanguageCSharp, IsBehaviour: true},
	}
}

func TestClosureOf_Container(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)

	// The scene embeds the crate prefab and a texture; the prefab carries
	// the Alpha script.
	sceneContent := `--- !u!1001 &100
PrefabInstance:
  m_SourcePrefab: {fileID: 100100000, guid: pppp, type: 3}
  m_Texture: {fileID: 2800000, guid: texguid, type: 3}
`
	prefabContent := `--- !u!114 &200
MonoBehaviour:
  m_Script: {fileID: 11500000, guid: aaaa, type: 3}
`
	mockStore.EXPECT().ReadAsset(mainScene).Return([]byte(sceneContent), nil)
	mockStore.EXPECT().LookupGUID(asset.GUID("pppp")).Return(crateRef, true)
	mockStore.EXPECT().LookupGUID(asset.GUID("texguid")).Return(asset.Ref{}, false)
	mockStore.EXPECT().ReadAsset(crateRef).Return([]byte(prefabContent), nil)
	mockStore.EXPECT().LookupGUID(asset.GUID("aaaa")).Return(alphaRef, true)

	provider, err := NewProvider(NewProviderParams{Store: mockStore, Scripts: catalogScripts()})
	require.NoError(t, err)

	closure, err := provider.ClosureOf(mainScene)
	require.NoError(t, err)

	// The prefab, the texture and the script are all in the closure, but
	// Alpha's code references are not walked from a container root.
	assert.Equal(t, map[asset.GUID]struct{}{
		"pppp":    {},
		"texguid": {},
		"aaaa":    {},
	}, closure)
}

func TestClosureOf_Script(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)

	alphaSource := `public class Alpha : MonoBehaviour { Beta companion; }`
	betaSource := `public class Beta : MonoBehaviour { }`

	mockStore.EXPECT().ReadAsset(alphaRef).Return([]byte(alphaSource), nil)
	mockStore.EXPECT().LookupGUID(asset.GUID("bbbb")).Return(betaRef, true)
	mockStore.EXPECT().ReadAsset(betaRef).Return([]byte(betaSource), nil)

	provider, err := NewProvider(NewProviderParams{Store: mockStore, Scripts: catalogScripts()})
	require.NoError(t, err)

	closure, err := provider.ClosureOf(alphaRef)
	require.NoError(t, err)

	assert.Equal(t, map[asset.GUID]struct{}{"bbbb": {}}, closure)

	// The root never appears in its own closure even when the referenced
	// script points back at it.
	assert.NotContains(t, closure, asset.GUID("aaaa"))
}

func TestClosureOf_MutualScriptReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)

	alphaSource := `public class Alpha : MonoBehaviour { Beta b; }`
	betaSource := `public class Beta : MonoBehaviour { Alpha a; }`

	mockStore.EXPECT().ReadAsset(alphaRef).Return([]byte(alphaSource), nil)
	mockStore.EXPECT().LookupGUID(asset.GUID("bbbb")).Return(betaRef, true)
	mockStore.EXPECT().ReadAsset(betaRef).Return([]byte(betaSource), nil)

	provider, err := NewProvider(NewProviderParams{Store: mockStore, Scripts: catalogScripts()})
	require.NoError(t, err)

	closure, err := provider.ClosureOf(alphaRef)
	require.NoError(t, err)
	assert.Equal(t, map[asset.GUID]struct{}{"bbbb": {}}, closure)
}

func TestClosureOf_RootFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().ReadAsset(mainScene).Return(nil, errors.New("corrupt on disk"))

	provider, err := NewProvider(NewProviderParams{Store: mockStore, Scripts: catalogScripts()})
	require.NoError(t, err)

	_, err = provider.ClosureOf(mainScene)
	assert.ErrorIs(t, err, ErrClosureUnavailable)
}

func TestClosureOf_BrokenDependencyDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)

	sceneContent := `--- !u!1001 &100
PrefabInstance:
  m_SourcePrefab: {fileID: 100100000, guid: pppp, type: 3}
`
	mockStore.EXPECT().ReadAsset(mainScene).Return([]byte(sceneContent), nil)
	mockStore.EXPECT().LookupGUID(asset.GUID("pppp")).Return(crateRef, true)
	mockStore.EXPECT().ReadAsset(crateRef).Return(nil, errors.New("corrupt prefab"))

	provider, err := NewProvider(NewProviderParams{Store: mockStore, Scripts: catalogScripts()})
	require.NoError(t, err)

	// The scene's closure still resolves; the broken prefab contributes
	// only itself.
	closure, err := provider.ClosureOf(mainScene)
	require.NoError(t, err)
	assert.Equal(t, map[asset.GUID]struct{}{"pppp": {}}, closure)
}

func TestClosureOf_MemoizesDirectReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)

	sceneContent := `--- !u!1001 &100
PrefabInstance:
  m_SourcePrefab: {fileID: 100100000, guid: pppp, type: 3}
`
	prefabContent := `--- !u!1 &1
GameObject:
  m_Name: Crate
`
	// Each asset is read exactly once even across two closure requests.
	mockStore.EXPECT().ReadAsset(mainScene).Return([]byte(sceneContent), nil).Times(1)
	mockStore.EXPECT().ReadAsset(crateRef).Return([]byte(prefabContent), nil).Times(1)
	mockStore.EXPECT().LookupGUID(asset.GUID("pppp")).Return(crateRef, true).Times(2)

	provider, err := NewProvider(NewProviderParams{Store: mockStore, Scripts: catalogScripts()})
	require.NoError(t, err)

	first, err := provider.ClosureOf(mainScene)
	require.NoError(t, err)
	second, err := provider.ClosureOf(mainScene)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
