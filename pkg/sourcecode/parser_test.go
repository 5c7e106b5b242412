//go:build unit

package sourcecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avral/scriptscan/pkg/asset"
)

const playerSource = `using UnityEngine;

public class PlayerController : MonoBehaviour
{
    private HealthSystem health;

    void Update()
    {
        health.Tick();
    }
}
`

func TestParser_Declaration(t *testing.T) {
	parser := NewParser()

	decl, err := parser.Declaration([]byte(playerSource))
	require.NoError(t, err)

	assert.Equal(t, "PlayerController", decl.ClassName)
	assert.Equal(t, []string{"MonoBehaviour"}, decl.BaseTypes)
}

func TestParser_Declaration_QualifiedBase(t *testing.T) {
	parser := NewParser()

	source := `class Door : UnityEngine.MonoBehaviour {}`
	decl, err := parser.Declaration([]byte(source))
	require.NoError(t, err)

	assert.Equal(t, "Door", decl.ClassName)
	assert.Equal(t, []string{"MonoBehaviour"}, decl.BaseTypes)
}

func TestParser_Declaration_MultipleBases(t *testing.T) {
	parser := NewParser()

	source := `public class Turret : MonoBehaviour, IDamageable, IComparable<Turret> {}`
	decl, err := parser.Declaration([]byte(source))
	require.NoError(t, err)

	assert.Equal(t, "Turret", decl.ClassName)
	assert.Equal(t, []string{"MonoBehaviour", "IDamageable", "IComparable"}, decl.BaseTypes)
}

func TestParser_Declaration_PlainClass(t *testing.T) {
	parser := NewParser()

	source := `public class DamageTable { public int Lookup(int level) { return level * 2; } }`
	decl, err := parser.Declaration([]byte(source))
	require.NoError(t, err)

	assert.Equal(t, "DamageTable", decl.ClassName)
	assert.Empty(t, decl.BaseTypes)
}

func TestParser_Declaration_NoClass(t *testing.T) {
	parser := NewParser()

	_, err := parser.Declaration([]byte("// nothing here\n"))
	assert.ErrorIs(t, err, ErrNoDeclaration)

	_, err = parser.Declaration(nil)
	assert.ErrorIs(t, err, ErrNoDeclaration)
}

func TestParser_Identifiers_CSharp(t *testing.T) {
	parser := NewParser()

	idents, err := parser.Identifiers(asset.LanguageCSharp, []byte(playerSource))
	require.NoError(t, err)

	assert.Contains(t, idents, "HealthSystem")
	assert.Contains(t, idents, "health")
}

func TestParser_Identifiers_LegacyDialect(t *testing.T) {
	parser := NewParser()

	source := `var hp : HealthSystem; function Update() { hp.Tick(); }`
	idents, err := parser.Identifiers(asset.LanguageJavaScript, []byte(source))
	require.NoError(t, err)

	assert.Contains(t, idents, "HealthSystem")
	assert.Contains(t, idents, "function")
}
