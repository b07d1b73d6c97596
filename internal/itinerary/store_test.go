package itinerary

import (
	"testing"

	"github.com/lomkinju/qienn/internal/models"
)

func testDays() []models.DayPlan {
	return []models.DayPlan{
		{
			DayLabel: "D1", Date: "2/9 (一)", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "a", Time: "10:40", Activity: "抵達成田機場"},
				{ID: "b", Time: "14:30", Activity: "淺草地區"},
			},
		},
		{
			DayLabel: "D2", Date: "2/10 (二)", Status: models.StatusUnplanned,
			Items: nil,
		},
	}
}

func itemTimes(d models.DayPlan) []string {
	out := make([]string, len(d.Items))
	for i, it := range d.Items {
		out[i] = it.Time
	}
	return out
}

func TestAddItemKeepsSortedOrder(t *testing.T) {
	s := New(testDays())

	added, ok := s.AddItem("D1", models.ItineraryItem{Time: "12:30", Activity: "Lunch"})
	if !ok {
		t.Fatal("AddItem: no day matched")
	}
	if added.ID == "" {
		t.Error("AddItem: expected an assigned ID")
	}

	d, _ := s.Day("D1")
	want := []string{"10:40", "12:30", "14:30"}
	got := itemTimes(d)
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("items[%d].Time = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAddItemUnknownDayIsNoop(t *testing.T) {
	s := New(testDays())
	if _, ok := s.AddItem("D9", models.ItineraryItem{Time: "12:00", Activity: "x"}); ok {
		t.Error("AddItem on unknown day should report no match")
	}
	if d, _ := s.Day("D1"); len(d.Items) != 2 {
		t.Errorf("D1 items changed, len = %d", len(d.Items))
	}
}

func TestAddItemMarksDayPlanned(t *testing.T) {
	s := New(testDays())
	if _, ok := s.AddItem("D2", models.ItineraryItem{Time: "09:00", Activity: "早餐"}); !ok {
		t.Fatal("AddItem failed")
	}
	d, _ := s.Day("D2")
	if d.Status != models.StatusPlanned {
		t.Errorf("status = %q, want Planned", d.Status)
	}

	// Adding again re-confirms Planned; there is no way back to Unplanned.
	s.AddItem("D2", models.ItineraryItem{Time: "12:00", Activity: "午餐"})
	d, _ = s.Day("D2")
	if d.Status != models.StatusPlanned {
		t.Errorf("status after second add = %q, want Planned", d.Status)
	}
}

func TestUpdateItemResorts(t *testing.T) {
	s := New(testDays())
	if !s.UpdateItem("D1", "b", models.ItineraryItem{Time: "09:00", Activity: "提早"}) {
		t.Fatal("UpdateItem failed")
	}
	d, _ := s.Day("D1")
	got := itemTimes(d)
	if got[0] != "09:00" || got[1] != "10:40" {
		t.Errorf("order after update = %v", got)
	}
	if d.Items[0].ID != "b" {
		t.Errorf("updated item lost its ID: %q", d.Items[0].ID)
	}
}

func TestUpdateItemUnknownIDIsNoop(t *testing.T) {
	s := New(testDays())
	if s.UpdateItem("D1", "zzz", models.ItineraryItem{Time: "09:00"}) {
		t.Error("UpdateItem with unknown ID should be a no-op")
	}
}

func TestDeleteItem(t *testing.T) {
	s := New(testDays())
	if !s.DeleteItem("D1", "a") {
		t.Fatal("DeleteItem failed")
	}
	d, _ := s.Day("D1")
	if len(d.Items) != 1 {
		t.Fatalf("len = %d, want 1", len(d.Items))
	}
	for _, it := range d.Items {
		if it.ID == "a" {
			t.Error("deleted item still present")
		}
	}

	// Stale/unknown ID: zero change.
	if s.DeleteItem("D1", "a") {
		t.Error("second delete should be a no-op")
	}
	d, _ = s.Day("D1")
	if len(d.Items) != 1 {
		t.Errorf("no-op delete changed length to %d", len(d.Items))
	}
}

func TestStableSortForEqualTimes(t *testing.T) {
	s := New(testDays())
	s.AddItem("D1", models.ItineraryItem{ID: "backup", Time: "14:30", Activity: "備案", IsBackup: true})
	d, _ := s.Day("D1")
	// "b" was already at 14:30; the new item must land after it.
	var order []string
	for _, it := range d.Items {
		if it.Time == "14:30" {
			order = append(order, it.ID)
		}
	}
	if len(order) != 2 || order[0] != "b" || order[1] != "backup" {
		t.Errorf("equal-time order = %v, want [b backup]", order)
	}
}

func TestSentinelTimesSortByByteOrder(t *testing.T) {
	s := New([]models.DayPlan{{
		DayLabel: "D8", Status: models.StatusPlanned,
		Items: []models.ItineraryItem{
			{ID: "x", Time: "上午", Activity: "整理行李"},
			{ID: "y", Time: "12:00", Activity: "午餐"},
		},
	}})
	d, _ := s.Day("D8")
	// Multi-byte CJK sentinels compare greater than ASCII digits.
	if d.Items[0].Time != "12:00" || d.Items[1].Time != "上午" {
		t.Errorf("sentinel order = %v", itemTimes(d))
	}
}

func TestReadsAreCopies(t *testing.T) {
	s := New(testDays())
	d, _ := s.Day("D1")
	d.Items[0].Activity = "mutated"
	fresh, _ := s.Day("D1")
	if fresh.Items[0].Activity == "mutated" {
		t.Error("Day returned a shared slice")
	}

	all := s.Days()
	all[0].Items[0].Activity = "mutated again"
	fresh, _ = s.Day("D1")
	if fresh.Items[0].Activity == "mutated again" {
		t.Error("Days returned a shared slice")
	}
}

func TestReplaceAssignsMissingIDs(t *testing.T) {
	s := New(nil)
	s.Replace([]models.DayPlan{{
		DayLabel: "D1", Status: models.StatusPlanned,
		Items: []models.ItineraryItem{{Time: "10:00", Activity: "no id yet"}},
	}})
	d, _ := s.Day("D1")
	if d.Items[0].ID == "" {
		t.Error("Replace should assign IDs to items that lack one")
	}
}
