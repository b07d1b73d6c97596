package snapshot

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/lomkinju/qienn/internal/models"
)

func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Itinerary: []models.DayPlan{{
			DayLabel: "D1", Date: "2/9 (一)", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{{ID: "a", Time: "10:40", Activity: "抵達成田機場", Detail: "入境"}},
		}},
		Expenses: []models.ExpenseRecord{
			{ID: "1", Date: "2026-02-09", Item: "Ramen", Category: models.CategoryFood, Amount: 1200, Payer: "A"},
		},
		FoodList:     []string{"拉麵", "壽司"},
		ExchangeRate: 0.215,
		PackedItems:  map[string]bool{"護照 (正本 + 影本)": true},
	}
}

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "trip.json"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	s := testStore(t)
	want := testSnapshot()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadAbsentSlot(t *testing.T) {
	s := testStore(t)
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("absent slot should mean no data, got %+v", got)
	}
}

func TestLoadCorruptSlot(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("corrupt slot must not fail the caller: %v", err)
	}
	if got != nil {
		t.Errorf("corrupt slot should mean no data, got %+v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := testStore(t)
	first := testSnapshot()
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	second := testSnapshot()
	second.FoodList = []string{"咖哩飯"}
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.FoodList) != 1 || got.FoodList[0] != "咖哩飯" {
		t.Errorf("foodList = %v, want the second save's", got.FoodList)
	}
}

func TestWrittenByUs(t *testing.T) {
	s := testStore(t)
	if err := s.Save(testSnapshot()); err != nil {
		t.Fatal(err)
	}
	if !s.WrittenByUs() {
		t.Error("own save not recognized")
	}
	if err := os.WriteFile(s.Path(), []byte(`{"exchangeRate":0.3}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if s.WrittenByUs() {
		t.Error("external write mistaken for our own")
	}
}

func TestWatchDetectsExternalChange(t *testing.T) {
	s := testStore(t)
	if err := s.Save(testSnapshot()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		_ = Watch(ctx, s, logger, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to arm before touching the slot.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(s.Path(), []byte(`{"exchangeRate":0.3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("external change not detected")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
