package variables

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrain_IgnoresNonPositive(t *testing.T) {
	var v Variables
	v.Train(Strength, 5)
	v.Train(Strength, 0)
	v.Train(Strength, -3)
	assert.Equal(t, 5.0, v.Get(Strength))
}

func TestTrainActivity_MapsToVariable(t *testing.T) {
	var v Variables
	v.TrainActivity(Lumberjacking, 2)
	v.TrainActivity(Mining, 3)
	v.TrainActivity(Farming, 1)
	v.TrainActivity(Fishing, 4)

	assert.Equal(t, 5.0, v.Get(Strength))
	assert.Equal(t, 1.0, v.Get(Endurance))
	assert.Equal(t, 4.0, v.Get(Luck))
}

func TestScaling(t *testing.T) {
	var v Variables
	assert.Equal(t, 0.0, Scaling(v, UnarmedDamage))

	v[Strength] = 10
	v[Focus] = 10
	assert.InDelta(t, 0.25, Scaling(v, UnarmedDamage), 1e-9)
	assert.InDelta(t, 0.15, Scaling(v, EnergyBonus), 1e-9)
}

func TestDerivedStats(t *testing.T) {
	assert.Equal(t, 150.0, MaxHP(50))
	assert.Equal(t, 150.0, EnergyPoolSize(10))
	assert.Equal(t, 10.0, EnergyRegenRate(10))
	assert.InDelta(t, 0.1, CritChance(10), 1e-9)
	assert.Equal(t, MaxCritChance, CritChance(1000))
	assert.InDelta(t, 1.25, LootQualityMultiplier(25), 1e-9)
}

func TestActivity_TextRoundTrip(t *testing.T) {
	b, err := json.Marshal(map[Activity]int{Meditation: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"meditation":1}`, string(b))

	var a Activity
	require.NoError(t, a.UnmarshalText([]byte("fishing")))
	assert.Equal(t, Fishing, a)

	assert.EqualError(t, a.UnmarshalText([]byte("fishin")), `unknown activity "fishin"`)
	assert.Equal(t, Fishing, a)
}
