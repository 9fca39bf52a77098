package kb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "rules.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	base := New()
	require.NoError(t, base.AssertFact("A"))
	require.NoError(t, base.Assert([]string{"A"}, "B"))
	require.NoError(t, base.Assert([]string{"A", "B"}, "C"))
	require.NoError(t, store.Save(ctx, base))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, base.Rules(), loaded.Rules())
	assert.True(t, loaded.Query("C"))
}

func TestStoreLoadEmpty(t *testing.T) {
	store := openTestStore(t)
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
}

func TestStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	first := New()
	require.NoError(t, first.AssertFact("A"))
	require.NoError(t, store.Save(ctx, first))

	second := New()
	require.NoError(t, second.AssertFact("B"))
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, Rule{Head: "B"}, loaded.Rules()[0])
}

func TestStoreKeepsAssertionOrder(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	base := New()
	require.NoError(t, base.Assert([]string{"B"}, "C"))
	require.NoError(t, base.AssertFact("A"))
	require.NoError(t, base.Assert([]string{"A"}, "B"))
	require.NoError(t, store.Save(ctx, base))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, base.Rules(), loaded.Rules())
}
