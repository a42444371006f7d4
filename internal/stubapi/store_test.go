package stubapi

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartlinkhq/admin-console/internal/model"
)

func storeGoals(names ...string) (*Store[model.Goal], []model.Goal) {
	store := NewStore[model.Goal]()
	goals := make([]model.Goal, 0, len(names))
	for _, name := range names {
		g := model.Goal{Base: model.Base{ID: uuid.New()}, Name: name}
		store.Put(g)
		goals = append(goals, g)
	}
	return store, goals
}

func TestStoreListKeepsInsertionOrder(t *testing.T) {
	store, goals := storeGoals("a", "b", "c")
	assert.Equal(t, goals, store.List())
}

func TestStorePutReplacesInPlace(t *testing.T) {
	store, goals := storeGoals("a", "b")
	updated := goals[0]
	updated.Name = "renamed"
	store.Put(updated)

	listed := store.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "renamed", listed[0].Name)
	assert.Equal(t, "b", listed[1].Name)
}

func TestStoreDelete(t *testing.T) {
	store, goals := storeGoals("a", "b")
	assert.True(t, store.Delete(goals[0].ID))
	assert.False(t, store.Delete(goals[0].ID))
	assert.Len(t, store.List(), 1)
}

func TestStorePage(t *testing.T) {
	store, _ := storeGoals("a", "b", "c", "d", "e")

	items, total := store.Page(2, 2, nil)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].Name)

	items, total = store.Page(9, 2, nil)
	assert.Equal(t, 5, total)
	assert.Empty(t, items)
}

func TestStorePageWithFilter(t *testing.T) {
	store, _ := storeGoals("apple", "banana", "apricot")

	items, total := store.Page(1, 10, func(g model.Goal) bool {
		return g.Name[0] == 'a'
	})
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)
}
