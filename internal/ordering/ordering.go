// Package ordering normalizes the sort_order column of user-sortable lists
// after a drag-and-drop move.
package ordering

import "github.com/google/uuid"

// Item is one member of a sortable sibling set.
type Item struct {
	ID        uuid.UUID
	SortOrder int
}

// Update is one (id, position) write to persist. Updates are applied as
// independent writes; a partially applied batch leaves positions temporarily
// inconsistent until the next full fetch re-sorts.
type Update struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
}

// Reorder moves movedID immediately before the position currently occupied
// by targetID and re-sequences the whole list to 0..n-1. One update is
// produced per item, including unchanged ones, because persistence is an
// unordered batch rather than a diff.
//
// Returns nil when movedID equals targetID or either id is absent: the move
// is a no-op and nothing must be written.
func Reorder(items []Item, movedID, targetID uuid.UUID) []Update {
	if movedID == targetID {
		return nil
	}

	movedIdx := indexOf(items, movedID)
	targetIdx := indexOf(items, targetID)
	if movedIdx < 0 || targetIdx < 0 {
		return nil
	}

	sequence := make([]uuid.UUID, 0, len(items))
	for i, item := range items {
		if i == movedIdx {
			continue
		}
		sequence = append(sequence, item.ID)
	}

	insertAt := indexOfID(sequence, targetID)
	sequence = append(sequence, uuid.Nil)
	copy(sequence[insertAt+1:], sequence[insertAt:])
	sequence[insertAt] = movedID

	updates := make([]Update, len(sequence))
	for i, id := range sequence {
		updates[i] = Update{ID: id, SortOrder: i}
	}
	return updates
}

func indexOf(items []Item, id uuid.UUID) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func indexOfID(ids []uuid.UUID, id uuid.UUID) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
