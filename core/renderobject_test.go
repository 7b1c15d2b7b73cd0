package core

import "testing"

func TestRenderObjectTable_DestroyFreesSlotForReuse(t *testing.T) {
	table := NewRenderObjectTable()

	a := &RenderObject{ID: InvalidRenderID}
	idA := table.Insert(a)

	b := &RenderObject{ID: InvalidRenderID}
	idB := table.Insert(b)

	if idA == idB {
		t.Fatalf("expected distinct IDs, got %d and %d", idA, idB)
	}

	table.Destroy(idA)
	if next := table.GetNextAvailableRenderID(); next != idA {
		t.Fatalf("expected destroyed slot %d to be reused, got %d", idA, next)
	}

	c := &RenderObject{ID: InvalidRenderID}
	idC := table.Insert(c)
	if idC != idA {
		t.Fatalf("expected new object to land in freed slot %d, got %d", idA, idC)
	}
}

func TestRenderObjectTable_InsertMarksDirty(t *testing.T) {
	table := NewRenderObjectTable()
	table.Dirty = false

	table.Insert(&RenderObject{ID: InvalidRenderID})
	if !table.Dirty {
		t.Fatalf("expected Insert to mark the batch cache dirty")
	}

	table.Dirty = false
	table.Destroy(0)
	if !table.Dirty {
		t.Fatalf("expected Destroy to mark the batch cache dirty")
	}
}
