package content

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Editor operations over an in-memory layout. Every operation returns the
// resulting slice; nothing is persisted until the caller saves the whole
// array.

// AddBlock appends a new block of the given type with default content.
func AddBlock(layout []Block, t BlockType) []Block {
	return append(layout, NewBlock(t))
}

// MoveBlock swaps the block at index with its neighbor at index+direction.
// Out-of-bounds moves are a no-op. Moving is its own inverse under
// immediate undo.
func MoveBlock(layout []Block, index, direction int) []Block {
	target := index + direction
	if index < 0 || index >= len(layout) || target < 0 || target >= len(layout) {
		return layout
	}
	layout[index], layout[target] = layout[target], layout[index]
	return layout
}

// UpdateBlockContent replaces the content of the block matching id
// wholesale. Field-level merging is the editor UI's job, not ours.
func UpdateBlockContent(layout []Block, id string, newContent json.RawMessage) []Block {
	for i := range layout {
		if layout[i].ID == id {
			layout[i].Content = newContent
			break
		}
	}
	return layout
}

// DeleteBlock removes the block matching id, if present.
func DeleteBlock(layout []Block, id string) []Block {
	for i := range layout {
		if layout[i].ID == id {
			return append(layout[:i], layout[i+1:]...)
		}
	}
	return layout
}

// DeleteBlockAt removes the block at index; out of range is a no-op.
func DeleteBlockAt(layout []Block, index int) []Block {
	if index < 0 || index >= len(layout) {
		return layout
	}
	return append(layout[:index], layout[index+1:]...)
}

// InsertBlockAt places b at the given index, shifting the rest down. This
// is the drag-and-drop repositioning primitive: remove, then insert at the
// drop target. An index past the end appends.
func InsertBlockAt(layout []Block, b Block, index int) []Block {
	if index < 0 {
		index = 0
	}
	if index >= len(layout) {
		return append(layout, b)
	}
	layout = append(layout, Block{})
	copy(layout[index+1:], layout[index:])
	layout[index] = b
	return layout
}

// EnsureIDs fills in ids for blocks that arrived without one and rewrites
// duplicates so ids stay unique within the layout. Client-generated ids are
// otherwise kept as-is.
func EnsureIDs(layout []Block) []Block {
	seen := make(map[string]bool, len(layout))
	for i := range layout {
		if layout[i].ID == "" || seen[layout[i].ID] {
			layout[i].ID = uuid.NewString()
		}
		seen[layout[i].ID] = true
	}
	return layout
}
