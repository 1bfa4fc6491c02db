package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", record{Name: "a", Count: 2}))

	var got record
	found, err := store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Name: "a", Count: 2}, got)
}

func TestMemoryAbsentKey(t *testing.T) {
	store := NewMemory()

	var got record
	found, err := store.Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryDeleteIdempotent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", record{}))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	var got record
	found, _ := store.Get(ctx, "k", &got)
	assert.False(t, found)
}

func TestMemoryCorruptPayload(t *testing.T) {
	store := NewMemory()
	store.SetRaw("k", []byte("{not json"))

	var got record
	found, err := store.Get(context.Background(), "k", &got)
	assert.False(t, found)
	assert.Error(t, err)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string, interface{}) (bool, error) {
	return false, errors.New("boom")
}

func (failingStore) Set(context.Context, string, interface{}) error {
	return errors.New("boom")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("boom")
}

func TestBestEffortSwallowsFailures(t *testing.T) {
	store := NewBestEffort(failingStore{}, zap.NewNop(), nil)
	ctx := context.Background()

	var got record
	found, err := store.Get(ctx, "k", &got)
	assert.False(t, found)
	assert.NoError(t, err)

	assert.NoError(t, store.Set(ctx, "k", record{}))
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestBestEffortPassesThrough(t *testing.T) {
	store := NewBestEffort(NewMemory(), zap.NewNop(), nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", record{Name: "b"}))

	var got record
	found, err := store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b", got.Name)
}
