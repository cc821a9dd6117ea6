package persistence

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/game"
	"github.com/talgya/dojo-idle/internal/managers"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	db.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return db
}

func TestSaveAndLoad(t *testing.T) {
	db := openTestDB(t)

	st := game.New(nil)
	st.PowerLevel.Earn(41)
	st.Managers.TaskManagers[managers.MeditationGuide] = 3
	st.Mastery.AwardXP(combat.Unarmed, 150)
	st.MasterReset()

	id, err := db.SaveGame("main", st)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := db.LoadGame(id, nil)
	require.NoError(t, err)
	assert.Equal(t, st.PowerLevel, loaded.PowerLevel)
	assert.Equal(t, st.Managers, loaded.Managers)
	assert.Equal(t, st.Mastery, loaded.Mastery)
	assert.Equal(t, combat.Armed, loaded.ActiveTheme)
	assert.Equal(t, "iron_fortress", loaded.Progression.Current().ID)

	events, err := db.RecentEvents(id, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "reset", events[0].Category)
}

func TestSaveReplacesByName(t *testing.T) {
	db := openTestDB(t)

	st := game.New(nil)
	first, err := db.SaveGame("main", st)
	require.NoError(t, err)

	st.Tick(120, true)
	second, err := db.SaveGame("main", st)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	saves, err := db.ListSaves()
	require.NoError(t, err)
	require.Len(t, saves, 1)
	assert.Equal(t, 120.0, saves[0].PlayTime)
	assert.Equal(t, "2026-01-02 03:04:06", saves[0].CreatedAt)
	assert.Equal(t, "2026-01-02 03:04:07", saves[0].UpdatedAt)
}

func TestLoadLatest(t *testing.T) {
	db := openTestDB(t)

	_, _, err := db.LoadLatest(nil)
	assert.ErrorIs(t, err, ErrNoSave)

	_, err = db.SaveGame("alpha", game.New(nil))
	require.NoError(t, err)
	later := game.New(nil)
	later.Gold.Earn(77)
	_, err = db.SaveGame("beta", later)
	require.NoError(t, err)

	st, info, err := db.LoadLatest(nil)
	require.NoError(t, err)
	assert.Equal(t, "beta", info.Name)
	assert.Equal(t, 77.0, st.Gold.Amount)

	alpha, info, err := db.LoadByName("alpha", nil)
	require.NoError(t, err)
	assert.Equal(t, "alpha", info.Name)
	assert.Equal(t, 0.0, alpha.Gold.Amount)
	_, _, err = db.LoadByName("gamma", nil)
	assert.ErrorIs(t, err, ErrNoSave)

	saves, err := db.ListSaves()
	require.NoError(t, err)
	require.Len(t, saves, 2)
	assert.Equal(t, "beta", saves[0].Name)
	assert.Equal(t, "forest_dojo", saves[1].Environment)
}

func TestMissingAndDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.LoadGame("nope", nil)
	assert.ErrorIs(t, err, ErrNoSave)
	assert.ErrorIs(t, db.DeleteSave("nope"), ErrNoSave)

	id, err := db.SaveGame("temp", game.New(nil))
	require.NoError(t, err)
	require.NoError(t, db.DeleteSave(id))
	_, err = db.LoadGame(id, nil)
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestMeta(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveMeta("last_save", "abc"))
	require.NoError(t, db.SaveMeta("last_save", "def"))
	v, err := db.GetMeta("last_save")
	require.NoError(t, err)
	assert.Equal(t, "def", v)

	_, err = db.GetMeta("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Contains(t, err.Error(), `get meta "missing"`)
}

func TestErrorsAfterClose(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Close())

	_, err := db.ListSaves()
	assert.ErrorContains(t, err, "list saves")
	_, err = db.SaveGame("main", game.New(nil))
	assert.ErrorContains(t, err, "begin save")
	assert.ErrorContains(t, db.DeleteSave("x"), "begin delete")
	assert.ErrorContains(t, db.SaveMeta("k", "v"), `save meta "k"`)
	_, err = db.RecentEvents("x", 5)
	assert.ErrorContains(t, err, "recent events of x")
}
