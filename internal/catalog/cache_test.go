package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestSnapshotCache_RoundTrip(t *testing.T) {
	client := newTestRedis(t)
	cache := NewSnapshotCache(client, "catalog:snapshot", time.Hour)

	ctx := context.Background()
	require.NoError(t, cache.Save(ctx, Builtin()))

	got, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Builtin(), got)
}

func TestSnapshotCache_Miss(t *testing.T) {
	client := newTestRedis(t)
	cache := NewSnapshotCache(client, "", time.Hour)

	_, err := cache.Load(context.Background())
	assert.ErrorIs(t, err, redis.Nil)
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	client := newTestRedis(t)
	cache := NewSnapshotCache(client, "catalog:snapshot", time.Hour)

	ctx := context.Background()
	require.NoError(t, cache.Save(ctx, Builtin()))
	require.NoError(t, cache.Invalidate(ctx))

	_, err := cache.Load(ctx)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestSnapshotCache_LoadError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("catalog:snapshot").SetErr(errors.New("connection reset"))

	cache := NewSnapshotCache(client, "catalog:snapshot", time.Hour)
	_, err := cache.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, redis.Nil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvider_BuiltinSource(t *testing.T) {
	p := NewProvider(testCatalogConfig("builtin"), nil, nil, newNoOpLogger())

	c, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
}

func TestProvider_PostgresSourcePrefersSnapshot(t *testing.T) {
	client := newTestRedis(t)
	cache := NewSnapshotCache(client, "catalog:snapshot", time.Hour)
	require.NoError(t, cache.Save(context.Background(), Builtin()[:3]))

	p := NewProvider(testCatalogConfig("postgres"), nil, client, newNoOpLogger())

	c, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestProvider_PostgresSourceFallsBackToBuiltin(t *testing.T) {
	client := newTestRedis(t)

	// No snapshot, no database: built-in set fills in.
	p := NewProvider(testCatalogConfig("postgres"), nil, client, newNoOpLogger())

	c, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
}

func TestProvider_StrictEmpty(t *testing.T) {
	cfg := testCatalogConfig("postgres")
	cfg.StrictEmpty = true

	p := NewProvider(cfg, nil, newTestRedis(t), newNoOpLogger())

	_, err := p.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_UNAVAILABLE")
}
