package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-cli/internal/model"
)

func TestNextIDEmptyStore(t *testing.T) {
	s := New(nil)
	assert.Equal(t, 1, s.NextID())
}

func TestNextIDWatermarkSurvivesDelete(t *testing.T) {
	s := New(nil)
	s.Add(model.NewItem(s.NextID(), "Widget", "A thing"))
	s.Add(model.NewItem(s.NextID(), "Gadget", "Another"))

	require.Equal(t, 2, s.Len())
	require.True(t, s.Remove(1))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
	// id 1 is gone for good; the watermark does not back up
	assert.Equal(t, 3, s.NextID())
}

func TestNextIDNeverReusesDeletedMax(t *testing.T) {
	s := New(nil)
	s.Add(model.NewItem(s.NextID(), "Widget", "A thing"))
	s.Add(model.NewItem(s.NextID(), "Gadget", "Another"))
	require.True(t, s.Remove(2))

	assert.Equal(t, 3, s.NextID(), "deleting the highest id must not resurrect it")
}

func TestNewSeedsWatermark(t *testing.T) {
	s := New([]model.Item{
		{ID: 3, Name: "a", Description: "x"},
		{ID: 7, Name: "b", Description: "y"},
	})
	assert.Equal(t, 8, s.NextID())
}

func TestAddAssignsStrictlyIncreasingIDs(t *testing.T) {
	s := New(nil)
	var last int
	for i := 0; i < 10; i++ {
		id := s.NextID()
		assert.Greater(t, id, last)
		s.Add(model.NewItem(id, "item", "desc"))
		last = id
	}
	seen := map[int]bool{}
	for _, it := range s.Items() {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}

func TestFindByID(t *testing.T) {
	s := New([]model.Item{
		{ID: 1, Name: "Widget", Description: "A thing"},
		{ID: 5, Name: "Gadget", Description: "Another"},
	})

	it, ok := s.FindByID(5)
	require.True(t, ok)
	assert.Equal(t, "Gadget", it.Name)

	_, ok = s.FindByID(3)
	assert.False(t, ok)
}

func TestIndexOf(t *testing.T) {
	s := New([]model.Item{
		{ID: 4, Name: "a", Description: "x"},
		{ID: 2, Name: "b", Description: "y"},
	})
	assert.Equal(t, 0, s.IndexOf(4))
	assert.Equal(t, 1, s.IndexOf(2))
	assert.Equal(t, -1, s.IndexOf(9))
}

func TestReplaceKeepsPosition(t *testing.T) {
	s := New([]model.Item{
		{ID: 1, Name: "a", Description: "x"},
		{ID: 2, Name: "b", Description: "y"},
		{ID: 3, Name: "c", Description: "z"},
	})
	require.True(t, s.Replace(2, model.Item{ID: 2, Name: "B", Description: "Y"}))

	items := s.Items()
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "B", items[1].Name)

	assert.False(t, s.Replace(9, model.Item{ID: 9, Name: "n", Description: "d"}))
}

func TestRemoveShiftsLaterItems(t *testing.T) {
	s := New([]model.Item{
		{ID: 1, Name: "a", Description: "x"},
		{ID: 2, Name: "b", Description: "y"},
		{ID: 3, Name: "c", Description: "z"},
	})
	require.True(t, s.Remove(2))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 3, items[1].ID)

	_, ok := s.FindByID(2)
	assert.False(t, ok)
	assert.False(t, s.Remove(2))
}

func TestItemsReturnsCopy(t *testing.T) {
	s := New([]model.Item{{ID: 1, Name: "a", Description: "x"}})
	items := s.Items()
	items[0].Name = "mutated"

	it, ok := s.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "a", it.Name)
}

func TestNewCopiesSeedSlice(t *testing.T) {
	seed := []model.Item{{ID: 1, Name: "a", Description: "x"}}
	s := New(seed)
	seed[0].Name = "mutated"

	it, ok := s.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "a", it.Name)
}
