package checklist

import "testing"

func TestFoodAddDedupes(t *testing.T) {
	f := NewFoodList([]string{"拉麵"})
	if !f.Add("壽司") {
		t.Error("Add of new name reported no change")
	}
	if f.Add("壽司") {
		t.Error("duplicate Add should be a no-op")
	}

	count := 0
	for _, n := range f.Names() {
		if n == "壽司" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("壽司 appears %d times, want 1", count)
	}
}

func TestFoodDeleteExactMatch(t *testing.T) {
	f := NewFoodList([]string{"拉麵", "壽司", "炸豬排"})
	if !f.Delete("壽司") {
		t.Error("Delete of present name reported no change")
	}
	if f.Delete("壽司") {
		t.Error("Delete of absent name should be a no-op")
	}
	got := f.Names()
	if len(got) != 2 || got[0] != "拉麵" || got[1] != "炸豬排" {
		t.Errorf("names = %v", got)
	}
}

func TestFoodInsertionOrderPreserved(t *testing.T) {
	f := NewFoodList(nil)
	for _, n := range []string{"c", "a", "b"} {
		f.Add(n)
	}
	got := f.Names()
	if got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Errorf("order = %v, want insertion order", got)
	}
}

func TestToggleDefaultsAbsentToFalse(t *testing.T) {
	p := NewPackedItems()
	if !p.Toggle("護照 (正本 + 影本)") {
		t.Error("first toggle should set true")
	}
	if p.Toggle("護照 (正本 + 影本)") {
		t.Error("second toggle should set false")
	}
	if p.PackedCount() != 0 {
		t.Errorf("packed count = %d, want 0", p.PackedCount())
	}
}

func TestPackedMapIsCopy(t *testing.T) {
	p := NewPackedItems()
	p.Toggle("錢包 (零錢包)")
	m := p.Map()
	m["錢包 (零錢包)"] = false
	if !p.Map()["錢包 (零錢包)"] {
		t.Error("Map returned shared state")
	}
}
