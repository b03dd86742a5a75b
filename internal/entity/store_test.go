package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddPrependsAndListCopies(t *testing.T) {
	store := NewStore(func(i item) string { return i.ID }, seedItems())

	store.Add(item{ID: "4", Name: "Delta"})
	assert.Equal(t, []string{"4", "1", "2", "3"}, ids(store.List()))
	assert.Equal(t, 4, store.Len())

	listed := store.List()
	listed[0].Name = "mutated"
	got, ok := store.Get("4")
	require.True(t, ok)
	assert.Equal(t, "Delta", got.Name)
}

func TestStoreReplaceKeepsPosition(t *testing.T) {
	store := NewStore(func(i item) string { return i.ID }, seedItems())

	ok := store.Replace("2", item{ID: "2", Name: "Beta 2"})
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, ids(store.List()))
	got, _ := store.Get("2")
	assert.Equal(t, "Beta 2", got.Name)

	assert.False(t, store.Replace("missing", item{ID: "missing"}))
	assert.Equal(t, 3, store.Len())
}

func TestStoreRemove(t *testing.T) {
	store := NewStore(func(i item) string { return i.ID }, seedItems())

	removed, ok := store.Remove("2")
	require.True(t, ok)
	assert.Equal(t, "Beta", removed.Name)
	assert.Equal(t, []string{"1", "3"}, ids(store.List()))

	_, ok = store.Remove("2")
	assert.False(t, ok)
	assert.Equal(t, []string{"1", "3"}, ids(store.List()))
}

func TestStoreResetDoesNotAliasSeed(t *testing.T) {
	seed := seedItems()
	store := NewStore(func(i item) string { return i.ID }, seed)

	store.Add(item{ID: "9"})
	store.Replace("1", item{ID: "1", Name: "changed"})
	assert.Equal(t, "Alpha", seed[0].Name)

	store.Reset(seed)
	assert.Equal(t, []string{"1", "2", "3"}, ids(store.List()))
	got, _ := store.Get("1")
	assert.Equal(t, "Alpha", got.Name)
}
