package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

func sampleLayout() []Block {
	return []Block{
		{ID: "a", Type: BlockHero, Content: json.RawMessage(`{"title":"A"}`)},
		{ID: "b", Type: BlockText, Content: json.RawMessage(`{"text":"B"}`)},
		{ID: "c", Type: BlockImage, Content: json.RawMessage(`{"imageUrl":"/c.jpg"}`)},
	}
}

func ids(layout []Block) []string {
	out := make([]string, len(layout))
	for i, b := range layout {
		out[i] = b.ID
	}
	return out
}

func TestMoveBlockIsOwnInverse(t *testing.T) {
	layout := sampleLayout()
	want := ids(sampleLayout())

	layout = MoveBlock(layout, 1, -1)
	if got := ids(layout); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("after move up: %v", got)
	}
	layout = MoveBlock(layout, 0, +1)
	if got := ids(layout); !reflect.DeepEqual(got, want) {
		t.Fatalf("undo did not restore order: got %v want %v", got, want)
	}
}

func TestMoveBlockOutOfBounds(t *testing.T) {
	layout := sampleLayout()
	want := ids(sampleLayout())

	layout = MoveBlock(layout, 0, -1)
	layout = MoveBlock(layout, 2, +1)
	layout = MoveBlock(layout, 7, +1)
	if got := ids(layout); !reflect.DeepEqual(got, want) {
		t.Fatalf("out-of-bounds move changed order: %v", got)
	}
}

func TestAddThenDeleteRestores(t *testing.T) {
	layout := sampleLayout()
	before := ids(layout)

	layout = AddBlock(layout, BlockTestimonials)
	if len(layout) != 4 {
		t.Fatalf("add: len = %d, want 4", len(layout))
	}
	newID := layout[3].ID

	layout = DeleteBlock(layout, newID)
	if got := ids(layout); !reflect.DeepEqual(got, before) {
		t.Fatalf("add+delete did not restore: got %v want %v", got, before)
	}
}

func TestDeleteBlockMissingID(t *testing.T) {
	layout := sampleLayout()
	layout = DeleteBlock(layout, "nope")
	if len(layout) != 3 {
		t.Fatalf("delete of unknown id changed layout: %v", ids(layout))
	}
}

func TestDeleteBlockAt(t *testing.T) {
	layout := DeleteBlockAt(sampleLayout(), 1)
	if got := ids(layout); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("delete at index: %v", got)
	}
	layout = DeleteBlockAt(layout, 9)
	if len(layout) != 2 {
		t.Fatal("out-of-range delete should be a no-op")
	}
}

func TestInsertBlockAt(t *testing.T) {
	b := Block{ID: "x", Type: BlockText, Content: json.RawMessage(`{}`)}

	layout := InsertBlockAt(sampleLayout(), b, 1)
	if got := ids(layout); !reflect.DeepEqual(got, []string{"a", "x", "b", "c"}) {
		t.Fatalf("insert mid: %v", got)
	}

	layout = InsertBlockAt(sampleLayout(), b, 99)
	if got := ids(layout); !reflect.DeepEqual(got, []string{"a", "b", "c", "x"}) {
		t.Fatalf("insert past end: %v", got)
	}
}

func TestUpdateBlockContent(t *testing.T) {
	layout := sampleLayout()
	layout = UpdateBlockContent(layout, "b", json.RawMessage(`{"text":"updated"}`))
	if string(layout[1].Content) != `{"text":"updated"}` {
		t.Fatalf("content not replaced: %s", layout[1].Content)
	}
	// other blocks untouched
	if string(layout[0].Content) != `{"title":"A"}` {
		t.Fatalf("neighbor content changed: %s", layout[0].Content)
	}
}

func TestEnsureIDs(t *testing.T) {
	layout := []Block{
		{ID: "", Type: BlockHero},
		{ID: "dup", Type: BlockText},
		{ID: "dup", Type: BlockImage},
	}
	layout = EnsureIDs(layout)
	seen := map[string]bool{}
	for _, b := range layout {
		if b.ID == "" {
			t.Fatal("empty id survived EnsureIDs")
		}
		if seen[b.ID] {
			t.Fatalf("duplicate id survived: %q", b.ID)
		}
		seen[b.ID] = true
	}
	if layout[1].ID != "dup" {
		t.Fatal("first occurrence of a duplicate id should be kept")
	}
}
