package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"takeabite/internal/seed"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestReadCollectionAbsent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ReadCollection(CookiesKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	payload := []byte(`[{"id":1}]`)
	require.NoError(t, store.WriteCollection(CookiesKey, payload))

	got, err := store.ReadCollection(CookiesKey)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// A second write replaces the payload wholesale.
	replaced := []byte(`[{"id":1},{"id":2}]`)
	require.NoError(t, store.WriteCollection(CookiesKey, replaced))

	got, err = store.ReadCollection(CookiesKey)
	require.NoError(t, err)
	assert.Equal(t, replaced, got)
}

func TestSeedIdempotent(t *testing.T) {
	store := newTestStore(t)
	data := seed.Default()

	require.NoError(t, store.Seed(data))

	first, err := store.ReadCollection(CookiesKey)
	require.NoError(t, err)

	// Seeding again must leave both collections untouched.
	require.NoError(t, store.Seed(data))

	second, err := store.ReadCollection(CookiesKey)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSeedDoesNotOverwriteExistingData(t *testing.T) {
	store := newTestStore(t)

	custom := []byte(`[{"id":99}]`)
	require.NoError(t, store.WriteCollection(OrdersKey, custom))

	require.NoError(t, store.Seed(seed.Default()))

	got, err := store.ReadCollection(OrdersKey)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestRemoveAll(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Seed(seed.Default()))
	require.NoError(t, store.RemoveAll(CookiesKey, OrdersKey))

	_, err := store.ReadCollection(CookiesKey)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.ReadCollection(OrdersKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResetReseeds(t *testing.T) {
	store := newTestStore(t)
	data := seed.Default()

	require.NoError(t, store.WriteCollection(CookiesKey, []byte(`[]`)))
	require.NoError(t, store.Reset(data))

	got, err := store.ReadCollection(CookiesKey)
	require.NoError(t, err)
	assert.NotEqual(t, []byte(`[]`), got)
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "persist.db")

	store, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.WriteCollection(CookiesKey, []byte(`[{"id":1}]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ReadCollection(CookiesKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), got)
}
