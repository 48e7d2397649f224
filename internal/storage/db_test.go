package storage

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "db.sqlite")
	store, err := NewDB(t.Context(), slog.Default(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDB_DictionaryCRUD(t *testing.T) {
	t.Parallel()

	store := newTestDB(t)

	err := store.SaveDictionary(t.Context(), "greetings", `Go --> https://go.dev`)
	require.NoError(t, err)

	source, err := store.LoadDictionary(t.Context(), "greetings")
	require.NoError(t, err)
	assert.Equal(t, `Go --> https://go.dev`, source)

	_, err = store.LoadDictionary(t.Context(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	err = store.SaveDictionary(t.Context(), "greetings", `fun --> https://example.com`)
	require.ErrorIs(t, err, ErrAlreadyExists)

	err = store.SaveDictionary(t.Context(), "broken", `KEY -> no-double-dash-arrow`)
	require.Error(t, err)
	_, err = store.LoadDictionary(t.Context(), "broken")
	require.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteDictionary(t.Context(), "greetings")
	require.NoError(t, err)
	_, err = store.LoadDictionary(t.Context(), "greetings")
	require.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteDictionary(t.Context(), "greetings")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDB_ListDictionariesPaginates(t *testing.T) {
	t.Parallel()

	store := newTestDB(t)

	for _, name := range []string{"alpha", "beta", "gamma"} {
		require.NoError(t, store.SaveDictionary(t.Context(), name, `Go --> https://go.dev`))
	}

	page1, next1, err := store.ListDictionaries(t.Context(), "", 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "alpha", page1[0].Name)
	assert.Equal(t, "beta", page1[1].Name)
	assert.Equal(t, "beta", next1)
	assert.Equal(t, 1, page1[0].RuleCount)

	page2, next2, err := store.ListDictionaries(t.Context(), next1, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "gamma", page2[0].Name)
	assert.Empty(t, next2)
}

func TestDB_ConversionAuditLog(t *testing.T) {
	t.Parallel()

	store := newTestDB(t)

	for i := range 3 {
		require.NoError(t, store.RecordConversion(t.Context(), ConversionRecord{
			OptionsJSON: `{"tab_width":8}`,
			InputBytes:  10 * (i + 1),
			OutputBytes: 20 * (i + 1),
		}))
	}

	page, next, err := store.ListConversions(t.Context(), 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// Most recent first.
	assert.Equal(t, 30, page[0].InputBytes)
	assert.Equal(t, 20, page[1].InputBytes)
	assert.NotZero(t, next)

	rest, next2, err := store.ListConversions(t.Context(), next, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, 10, rest[0].InputBytes)
	assert.Zero(t, next2)
}

func TestDB_RecordConversionWithDictionaryName(t *testing.T) {
	t.Parallel()

	store := newTestDB(t)

	require.NoError(t, store.RecordConversion(t.Context(), ConversionRecord{
		OptionsJSON:    `{}`,
		DictionaryName: "greetings",
	}))

	page, _, err := store.ListConversions(t.Context(), 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "greetings", page[0].DictionaryName)
}
