package ordering_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"studio-admin-backend/internal/ordering"
)

func makeItems(n int) []ordering.Item {
	items := make([]ordering.Item, n)
	for i := range items {
		items[i] = ordering.Item{ID: uuid.New(), SortOrder: i}
	}
	return items
}

func TestReorder_MoveToFront(t *testing.T) {
	items := makeItems(3)
	a, b, c := items[0].ID, items[1].ID, items[2].ID

	updates := ordering.Reorder(items, c, a)

	assert.Equal(t, []ordering.Update{
		{ID: c, SortOrder: 0},
		{ID: a, SortOrder: 1},
		{ID: b, SortOrder: 2},
	}, updates)
}

func TestReorder_MoveDown(t *testing.T) {
	items := makeItems(4)
	a, b, c, d := items[0].ID, items[1].ID, items[2].ID, items[3].ID

	// moving a before d lands a at d's former slot
	updates := ordering.Reorder(items, a, d)

	assert.Equal(t, []ordering.Update{
		{ID: b, SortOrder: 0},
		{ID: c, SortOrder: 1},
		{ID: a, SortOrder: 2},
		{ID: d, SortOrder: 3},
	}, updates)
}

func TestReorder_ProducesContiguousTotalOrder(t *testing.T) {
	items := makeItems(7)

	// positions with gaps, as a partially failed earlier batch would leave
	for i := range items {
		items[i].SortOrder = i * 3
	}

	for _, moved := range items {
		for _, target := range items {
			if moved.ID == target.ID {
				continue
			}
			updates := ordering.Reorder(items, moved.ID, target.ID)

			assert.Len(t, updates, len(items))
			seenOrders := make(map[int]bool)
			seenIDs := make(map[uuid.UUID]bool)
			for _, u := range updates {
				seenOrders[u.SortOrder] = true
				seenIDs[u.ID] = true
			}
			for i := range items {
				assert.True(t, seenOrders[i], "missing position %d", i)
				assert.True(t, seenIDs[items[i].ID], "missing item %s", items[i].ID)
			}
		}
	}
}

func TestReorder_NoOpWhenMovedEqualsTarget(t *testing.T) {
	items := makeItems(3)
	assert.Empty(t, ordering.Reorder(items, items[1].ID, items[1].ID))
}

func TestReorder_NoOpWhenIDMissing(t *testing.T) {
	items := makeItems(3)

	assert.Empty(t, ordering.Reorder(items, uuid.New(), items[0].ID))
	assert.Empty(t, ordering.Reorder(items, items[0].ID, uuid.New()))
}

func TestReorder_SingleElement(t *testing.T) {
	items := makeItems(1)
	assert.Empty(t, ordering.Reorder(items, items[0].ID, uuid.New()))
}
