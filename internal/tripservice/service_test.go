package tripservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/lomkinju/qienn/internal/models"
	"github.com/lomkinju/qienn/internal/seed"
	"github.com/lomkinju/qienn/internal/testutil"
	"github.com/lomkinju/qienn/internal/tripservice"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := testutil.TestSlot(t)
	logger := testutil.TestLogger()

	svc := tripservice.NewService(slot, logger)
	svc.AddExpense(ctx, models.ExpenseRecord{
		ID: "1", Date: "2026-02-09", Item: "Ramen", Category: models.CategoryFood, Amount: 1200, Payer: "A",
	})
	svc.AddFood(ctx, "牛丼")
	svc.SetRate(ctx, 0.22)
	svc.TogglePacked(ctx, "口罩")
	if _, err := svc.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A fresh service over the same slot picks everything up.
	svc2 := tripservice.NewService(slot, logger)
	if err := svc2.LoadInitial(ctx); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}
	report := svc2.Expenses(ctx, "", "")
	if report.TotalJPY != 1200 || report.ExchangeRate != 0.22 {
		t.Errorf("report = %+v", report)
	}
	foods := svc2.Foods(ctx)
	if foods[len(foods)-1] != "牛丼" {
		t.Errorf("foods = %v", foods)
	}
	if !svc2.Packing(ctx).Packed["口罩"] {
		t.Error("packed flag lost")
	}
}

func TestLoadInitialKeepsDefaultsWithoutSlot(t *testing.T) {
	ctx := context.Background()
	svc := testutil.TestService(t)
	if err := svc.LoadInitial(ctx); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}
	if len(svc.Days(ctx)) != len(seed.Itinerary()) {
		t.Errorf("itinerary length changed")
	}
	if svc.Rate(ctx) != seed.ExchangeRate {
		t.Errorf("rate = %v, want seed default", svc.Rate(ctx))
	}
}

func TestExpenseReportDerivedFigures(t *testing.T) {
	ctx := context.Background()
	svc := testutil.TestService(t)
	svc.SetRate(ctx, 0.215)
	svc.AddExpense(ctx, models.ExpenseRecord{ID: "1", Date: "2026-02-09", Item: "Ramen", Category: models.CategoryFood, Amount: 1200, Payer: "A"})
	svc.AddExpense(ctx, models.ExpenseRecord{ID: "2", Date: "2026-02-10", Item: "Metro", Category: models.CategoryTransport, Amount: 800, Payer: "A"})

	report := svc.Expenses(ctx, "2026-02-09", "2026-02-09")
	if len(report.Records) != 1 || report.TotalJPY != 1200 {
		t.Fatalf("filtered report = %+v", report)
	}
	if report.TotalTWD != 258 {
		t.Errorf("TWD = %d, want 258", report.TotalTWD)
	}

	full := svc.Expenses(ctx, "", "")
	var bucketSum int64
	for _, b := range full.Buckets {
		bucketSum += b.Amount
	}
	if bucketSum != full.TotalJPY {
		t.Errorf("bucket sum %d != total %d", bucketSum, full.TotalJPY)
	}
}

func TestSpinRecordsTally(t *testing.T) {
	ctx := context.Background()
	svc := testutil.TestService(t)

	res, err := svc.Spin(ctx)
	if err != nil {
		t.Fatalf("Spin: %v", err)
	}
	st := svc.WheelState(ctx)
	if st.Spinning || st.LastWinner != res.Winner {
		t.Errorf("state = %+v after synchronous settle", st)
	}

	tally, err := svc.WinnerTally(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tally) != 1 || tally[0].Winner != res.Winner || tally[0].Count != 1 {
		t.Errorf("tally = %v", tally)
	}
}

func TestSaveHistoryGrows(t *testing.T) {
	ctx := context.Background()
	svc := testutil.TestService(t)
	for i := 0; i < 2; i++ {
		if _, err := svc.Save(ctx); err != nil {
			t.Fatal(err)
		}
	}
	rows, err := svc.SaveHistory(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("history rows = %d, want 2", len(rows))
	}
}

func TestCountdown(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 2, 1, 6, 40, 0, 0, time.FixedZone("CST", 8*3600))
	svc := testutil.TestService(t, tripservice.WithClock(func() time.Time { return fixed }))
	if got := svc.Summary(ctx).DaysUntilTrip; got != 8 {
		t.Errorf("days until trip = %d, want 8", got)
	}

	after := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc2 := testutil.TestService(t, tripservice.WithClock(func() time.Time { return after }))
	if got := svc2.Summary(ctx).DaysUntilTrip; got != 0 {
		t.Errorf("past-trip countdown = %d, want 0", got)
	}
}

func TestPackingProgress(t *testing.T) {
	ctx := context.Background()
	svc := testutil.TestService(t)
	st := svc.Packing(ctx)
	if st.Progress.Packed != 0 || st.Progress.Total == 0 {
		t.Fatalf("initial progress = %+v", st.Progress)
	}
	svc.TogglePacked(ctx, st.Catalog[0].Items[0])
	st = svc.Packing(ctx)
	if st.Progress.Packed != 1 {
		t.Errorf("progress after one toggle = %+v", st.Progress)
	}
}

func TestItineraryThroughService(t *testing.T) {
	ctx := context.Background()
	svc := testutil.TestService(t)

	added, ok := svc.AddItem(ctx, "D1", models.ItineraryItem{Time: "12:30", Activity: "Lunch"})
	if !ok || added.ID == "" {
		t.Fatalf("AddItem = %+v, %v", added, ok)
	}
	if !svc.UpdateItem(ctx, "D1", added.ID, models.ItineraryItem{Time: "12:45", Activity: "Lunch (late)"}) {
		t.Error("UpdateItem failed")
	}
	if !svc.DeleteItem(ctx, "D1", added.ID) {
		t.Error("DeleteItem failed")
	}
	if svc.DeleteItem(ctx, "D1", added.ID) {
		t.Error("repeated delete should be a no-op")
	}

	if _, ok := svc.Day(ctx, "D8"); !ok {
		t.Error("seed day D8 missing")
	}
}
