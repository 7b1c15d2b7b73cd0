package core

import "testing"

func TestMaterialTable_GetNextAvailableMaterialID(t *testing.T) {
	table := NewMaterialTable()

	if id := table.GetNextAvailableMaterialID(); id != 0 {
		t.Fatalf("expected 0 on empty table, got %d", id)
	}

	table.Insert(0, &Material{Name: "a"})
	table.Insert(1, &Material{Name: "b"})
	if id := table.GetNextAvailableMaterialID(); id != 2 {
		t.Fatalf("expected 2, got %d", id)
	}

	table.Remove(0)
	if id := table.GetNextAvailableMaterialID(); id != 0 {
		t.Fatalf("expected freed slot 0, got %d", id)
	}
}

func TestMaterialTable_ClearMaterialsKeepsEngineMaterials(t *testing.T) {
	table := NewMaterialTable()
	table.Insert(0, &Material{Name: "engine", EngineMaterial: true})
	table.Insert(1, &Material{Name: "scene-a"})
	table.Insert(2, &Material{Name: "scene-b"})

	table.ClearMaterials(true)

	for id, mat := range table.All() {
		if !mat.EngineMaterial {
			t.Fatalf("material %d (%s) survived ClearMaterials(true) without EngineMaterial=true", id, mat.Name)
		}
	}
	if len(table.All()) != 1 {
		t.Fatalf("expected exactly 1 surviving material, got %d", len(table.All()))
	}
}

func TestMaterialTable_ClearMaterialsDestroyAll(t *testing.T) {
	table := NewMaterialTable()
	table.Insert(0, &Material{Name: "engine", EngineMaterial: true})
	table.Insert(1, &Material{Name: "scene"})

	table.ClearMaterials(false)

	if len(table.All()) != 0 {
		t.Fatalf("expected empty table, got %d entries", len(table.All()))
	}
}

func TestMaterialTable_FindByName(t *testing.T) {
	table := NewMaterialTable()
	table.Insert(5, &Material{Name: "pbr-default"})

	if id := table.FindByName("pbr-default"); id != 5 {
		t.Fatalf("expected 5, got %d", id)
	}
	if id := table.FindByName("missing"); id != InvalidMaterialID {
		t.Fatalf("expected InvalidMaterialID, got %d", id)
	}
}
