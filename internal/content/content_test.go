package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/environment"
	"github.com/talgya/dojo-idle/internal/equipment"
	"github.com/talgya/dojo-idle/internal/variables"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	require.Len(t, p.Environments, len(environment.Defaults))
	for i, env := range p.Environments {
		assert.Equal(t, environment.Defaults[i].ID, env.ID)
		assert.Equal(t, environment.Defaults[i].Theme, env.Theme)
		assert.Equal(t, environment.Defaults[i].MasterName, env.MasterName)
		assert.NotEmpty(t, p.OpponentsFor(env.ID), env.ID)
	}

	chen, ok := p.Opponent("master_chen")
	require.True(t, ok)
	assert.True(t, chen.Boss)
	assert.Equal(t, 400.0, chen.BaseHP)
	require.Len(t, chen.Loot, 1)
	assert.Equal(t, 1.0, chen.Loot[0].DropRate)

	_, ok = p.Opponent("nobody")
	assert.False(t, ok)

	pick, ok := p.Tool("steel_pick")
	require.True(t, ok)
	assert.Equal(t, variables.Mining, pick.Activity)
	assert.Equal(t, equipment.TierSteel, pick.Tier)

	boots, ok := p.Gadget("swift_boots")
	require.True(t, ok)
	assert.Equal(t, equipment.Utility, boots.Slot)
}

func TestValidateCollectsErrors(t *testing.T) {
	_, err := Parse([]byte(`
environments:
  - {id: a, name: A, tier: 1, theme: unarmed}
  - {id: a, name: B, tier: 0, theme: energy}
opponents:
  - id: ghost
    environment: nowhere
    base_hp: 0
    loot:
      - {item: x, drop_rate: 1.5, min: 3, max: 1}
tools:
  - {id: t, activity: mining, tier: 9, efficiency: 0}
gadgets:
  - {id: g, slot: head}
`))
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"duplicate id",
		"tier must be at least 1",
		"breaks the cycle",
		`unknown environment "nowhere"`,
		"base_hp must be positive",
		"drop_rate 1.5",
		"quantity range [3,1]",
		"tier 9 out of range",
		"efficiency must be positive",
		`unknown slot "head"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestParseRejectsUnknownTheme(t *testing.T) {
	_, err := Parse([]byte("environments:\n  - {id: a, tier: 1, theme: psychic}\n"))
	assert.Error(t, err)
}

func TestParseRejectsUnknownActivity(t *testing.T) {
	_, err := Parse([]byte(`
environments:
  - {id: a, name: A, tier: 1, theme: unarmed}
tools:
  - {id: rod, name: Rod, activity: fishin, tier: 1, efficiency: 1.1}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown activity "fishin"`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
environments:
  - {id: pit, name: The Pit, tier: 1, master: Grunt, theme: unarmed}
opponents:
  - {id: rat, name: Rat, environment: pit, base_hp: 5}
`), 0o644))

	p, err := LoadOrDefault(path)
	require.NoError(t, err)
	require.Len(t, p.Environments, 1)
	assert.Equal(t, combat.Unarmed, p.Environments[0].Theme)
	assert.Len(t, p.OpponentsFor("pit"), 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
