// Package tripservice coordinates the domain stores, the persistence
// gateway, and the archive. It is the only layer the API and MCP surfaces
// talk to.
package tripservice

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/lomkinju/qienn/internal/archive"
	"github.com/lomkinju/qienn/internal/checklist"
	"github.com/lomkinju/qienn/internal/itinerary"
	"github.com/lomkinju/qienn/internal/ledger"
	"github.com/lomkinju/qienn/internal/models"
	"github.com/lomkinju/qienn/internal/refdata"
	"github.com/lomkinju/qienn/internal/roulette"
	"github.com/lomkinju/qienn/internal/seed"
	"github.com/lomkinju/qienn/internal/snapshot"
	"github.com/lomkinju/qienn/internal/sse"
)

// Publisher is the slice of the SSE broker the service needs.
type Publisher interface {
	PublishChange(kind string, data map[string]string)
}

// Service owns all mutable trip state. Stores start from the seed fixtures;
// LoadInitial overlays a saved snapshot field by field.
type Service struct {
	days   *itinerary.Store
	ledger *ledger.Ledger
	foods  *checklist.FoodList
	packed *checklist.PackedItems
	wheel  *roulette.Wheel

	slot *snapshot.Store
	db   *archive.DB // nil disables the audit trail
	pub  Publisher   // nil disables event publishing

	logger    *slog.Logger
	now       func() time.Time
	wheelOpts []roulette.Option
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher attaches the SSE broker (or any Publisher).
func WithPublisher(pub Publisher) Option {
	return func(s *Service) { s.pub = pub }
}

// WithArchive attaches the save/spin audit trail.
func WithArchive(db *archive.DB) Option {
	return func(s *Service) { s.db = db }
}

// WithWheelOptions forwards options to the roulette wheel (tests use this
// for a seeded RNG and a synchronous settle).
func WithWheelOptions(opts ...roulette.Option) Option {
	return func(s *Service) { s.wheelOpts = opts }
}

// WithClock overrides the time source used for the countdown and archive
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service seeded with the default fixtures.
func NewService(slot *snapshot.Store, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		days:   itinerary.New(seed.Itinerary()),
		ledger: ledger.New(seed.Expenses(), seed.ExchangeRate),
		foods:  checklist.NewFoodList(seed.FoodList()),
		packed: checklist.NewPackedItems(),
		slot:   slot,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	wheelOpts := append([]roulette.Option{
		roulette.WithSettleFunc(s.onSpinSettled),
	}, s.wheelOpts...)
	s.wheel = roulette.New(wheelOpts...)
	return s
}

func (s *Service) publish(kind string, data map[string]string) {
	if s.pub != nil {
		s.pub.PublishChange(kind, data)
	}
}

// --- Snapshot lifecycle ---

// LoadInitial overlays the saved snapshot, if any, onto the seeded stores.
// Each top-level field is applied independently when present; missing fields
// keep the seed defaults. A corrupt slot applies nothing (the gateway
// already reduced it to "no data").
func (s *Service) LoadInitial(_ context.Context) error {
	snap, err := s.slot.Load()
	if err != nil {
		return err
	}
	if snap == nil {
		s.logger.Info("no saved snapshot, starting from seed data")
		return nil
	}
	s.apply(snap)
	s.logger.Info("snapshot loaded", slog.String("slot", s.slot.Path()))
	return nil
}

// Reload re-reads the slot after an external change and publishes
// snapshot.reloaded. An absent or corrupt slot leaves state untouched.
func (s *Service) Reload(_ context.Context) {
	snap, err := s.slot.Load()
	if err != nil {
		s.logger.Warn("reload failed", slog.String("error", err.Error()))
		return
	}
	if snap == nil {
		return
	}
	s.apply(snap)
	s.publish(sse.KindSnapshotReloaded, nil)
	s.logger.Info("snapshot reloaded after external change")
}

func (s *Service) apply(snap *models.Snapshot) {
	if snap.Itinerary != nil {
		s.days.Replace(snap.Itinerary)
	}
	if snap.Expenses != nil {
		s.ledger.ReplaceRecords(snap.Expenses)
	}
	if snap.FoodList != nil {
		s.foods.Replace(snap.FoodList)
	}
	if snap.ExchangeRate != 0 {
		s.ledger.SetRate(snap.ExchangeRate)
	}
	if snap.PackedItems != nil {
		s.packed.Replace(snap.PackedItems)
	}
}

// Save snapshots every store into the slot. A failing archive write is
// logged, never surfaced: the slot is the source of truth.
func (s *Service) Save(_ context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{
		Itinerary:    s.days.Days(),
		Expenses:     s.ledger.Records(),
		FoodList:     s.foods.Names(),
		ExchangeRate: s.ledger.Rate(),
		PackedItems:  s.packed.Map(),
	}
	if err := s.slot.Save(snap); err != nil {
		return nil, err
	}
	if s.db != nil {
		if err := s.db.RecordSave(s.slot.LastChecksum(), s.slot.LastSize(), s.now()); err != nil {
			s.logger.Warn("archive: save not recorded", slog.String("error", err.Error()))
		}
	}
	s.publish(sse.KindSnapshotSaved, map[string]string{"checksum": s.slot.LastChecksum()})
	return snap, nil
}

// SaveHistory lists recent saves from the archive, newest first.
func (s *Service) SaveHistory(_ context.Context, limit int) ([]archive.SaveRow, error) {
	if s.db == nil {
		return []archive.SaveRow{}, nil
	}
	rows, err := s.db.Saves(limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []archive.SaveRow{}
	}
	return rows, nil
}

// --- Trip summary ---

// TripSummary is the dashboard header data.
type TripSummary struct {
	Flights       []models.FlightDetails      `json:"flights"`
	Accommodation models.AccommodationDetails `json:"accommodation"`
	Costs         models.Costs                `json:"costs"`
	DaysUntilTrip int                         `json:"daysUntilTrip"`
}

// Summary returns the fixed trip facts plus the countdown.
func (s *Service) Summary(_ context.Context) TripSummary {
	return TripSummary{
		Flights:       seed.Flights(),
		Accommodation: seed.Accommodation(),
		Costs:         seed.TripCosts(),
		DaysUntilTrip: s.daysUntilTrip(),
	}
}

func (s *Service) daysUntilTrip() int {
	departure, err := time.Parse(time.RFC3339, seed.DepartureDate)
	if err != nil {
		return 0
	}
	diff := departure.Sub(s.now())
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days
}

// --- Itinerary ---

// Days returns every day plan, items sorted by time.
func (s *Service) Days(_ context.Context) []models.DayPlan {
	return s.days.Days()
}

// Day returns one day plan by label.
func (s *Service) Day(_ context.Context, dayLabel string) (models.DayPlan, bool) {
	return s.days.Day(dayLabel)
}

// AddItem adds an itinerary item; unknown day labels are a no-op.
func (s *Service) AddItem(_ context.Context, dayLabel string, item models.ItineraryItem) (models.ItineraryItem, bool) {
	added, ok := s.days.AddItem(dayLabel, item)
	if ok {
		s.publish(sse.KindItineraryUpdated, map[string]string{"day": dayLabel})
	}
	return added, ok
}

// UpdateItem replaces an item by ID; unknown day/item is a no-op.
func (s *Service) UpdateItem(_ context.Context, dayLabel, itemID string, item models.ItineraryItem) bool {
	ok := s.days.UpdateItem(dayLabel, itemID, item)
	if ok {
		s.publish(sse.KindItineraryUpdated, map[string]string{"day": dayLabel})
	}
	return ok
}

// DeleteItem removes an item by ID; unknown day/item is a no-op.
func (s *Service) DeleteItem(_ context.Context, dayLabel, itemID string) bool {
	ok := s.days.DeleteItem(dayLabel, itemID)
	if ok {
		s.publish(sse.KindItineraryUpdated, map[string]string{"day": dayLabel})
	}
	return ok
}

// --- Expenses ---

// ExpenseReport is the ledger view for a date range: records plus every
// derived figure the expense tab shows.
type ExpenseReport struct {
	Records      []models.ExpenseRecord  `json:"records"`
	TotalJPY     int64                   `json:"totalJPY"`
	TotalTWD     int64                   `json:"totalTWD"`
	AverageJPY   int64                   `json:"averageJPY"`
	Buckets      []ledger.CategoryBucket `json:"buckets"`
	ExchangeRate float64                 `json:"exchangeRate"`
}

// Expenses builds the report for [start, end]; empty bounds are unbounded.
func (s *Service) Expenses(_ context.Context, start, end string) ExpenseReport {
	filtered := ledger.FilterByDateRange(s.ledger.Records(), start, end)
	rate := s.ledger.Rate()
	total := ledger.Total(filtered)
	buckets := ledger.AggregateByCategory(filtered)
	if buckets == nil {
		buckets = []ledger.CategoryBucket{}
	}
	return ExpenseReport{
		Records:      filtered,
		TotalJPY:     total,
		TotalTWD:     ledger.Convert(total, rate),
		AverageJPY:   ledger.AveragePerRecord(filtered),
		Buckets:      buckets,
		ExchangeRate: rate,
	}
}

// AddExpense prepends a record to the ledger, assigning a timestamp-derived
// ID when the caller did not supply one.
func (s *Service) AddExpense(_ context.Context, rec models.ExpenseRecord) models.ExpenseRecord {
	if rec.ID == "" {
		rec.ID = strconv.FormatInt(s.now().UnixNano(), 36)
	}
	s.ledger.Add(rec)
	s.publish(sse.KindExpenseAdded, map[string]string{"id": rec.ID})
	return rec
}

// DeleteExpense removes a record by ID; absent IDs are a no-op.
func (s *Service) DeleteExpense(_ context.Context, id string) bool {
	ok := s.ledger.Delete(id)
	if ok {
		s.publish(sse.KindExpenseDeleted, map[string]string{"id": id})
	}
	return ok
}

// Rate returns the current JPY→TWD rate.
func (s *Service) Rate(_ context.Context) float64 {
	return s.ledger.Rate()
}

// SetRate replaces the JPY→TWD rate; all TWD figures re-derive on read.
func (s *Service) SetRate(_ context.Context, rate float64) {
	s.ledger.SetRate(rate)
	s.publish(sse.KindRateUpdated, nil)
}

// --- Food list & wheel ---

// Foods returns the wheel entries in insertion order.
func (s *Service) Foods(_ context.Context) []string {
	return s.foods.Names()
}

// AddFood appends a food name; duplicates are a no-op.
func (s *Service) AddFood(_ context.Context, name string) bool {
	ok := s.foods.Add(name)
	if ok {
		s.publish(sse.KindFoodUpdated, map[string]string{"name": name})
	}
	return ok
}

// DeleteFood removes a food name; absent names are a no-op.
func (s *Service) DeleteFood(_ context.Context, name string) bool {
	ok := s.foods.Delete(name)
	if ok {
		s.publish(sse.KindFoodUpdated, map[string]string{"name": name})
	}
	return ok
}

// Spin starts a wheel spin over the current food list.
func (s *Service) Spin(_ context.Context) (roulette.Result, error) {
	return s.wheel.Spin(s.foods.Names())
}

// WheelState returns the current rotation/spinning/winner view.
func (s *Service) WheelState(_ context.Context) roulette.State {
	return s.wheel.State()
}

// WinnerTally returns the historical spin tally from the archive.
func (s *Service) WinnerTally(_ context.Context) ([]archive.WinnerCount, error) {
	if s.db == nil {
		return []archive.WinnerCount{}, nil
	}
	tally, err := s.db.WinnerTally()
	if err != nil {
		return nil, err
	}
	if tally == nil {
		tally = []archive.WinnerCount{}
	}
	return tally, nil
}

func (s *Service) onSpinSettled(res roulette.Result) {
	if s.db != nil {
		if err := s.db.RecordSpin(res.Winner, res.Rotation, s.now()); err != nil {
			s.logger.Warn("archive: spin not recorded", slog.String("error", err.Error()))
		}
	}
	s.publish(sse.KindWheelSettled, map[string]string{"winner": res.Winner})
}

// --- Packing ---

// PackingProgress summarizes checklist completion over the static catalog.
type PackingProgress struct {
	Packed  int `json:"packed"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// PackingState is the packing tab view: catalog, flags, progress.
type PackingState struct {
	Catalog  []refdata.PackingCategory `json:"catalog"`
	Packed   map[string]bool           `json:"packed"`
	Progress PackingProgress           `json:"progress"`
}

// Packing returns the packing checklist state.
func (s *Service) Packing(_ context.Context) PackingState {
	total := refdata.CatalogItemCount()
	packed := s.packed.PackedCount()
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(packed) / float64(total) * 100))
	}
	return PackingState{
		Catalog: refdata.PackingCatalog(),
		Packed:  s.packed.Map(),
		Progress: PackingProgress{
			Packed:  packed,
			Total:   total,
			Percent: percent,
		},
	}
}

// TogglePacked flips one packing flag and returns the new value.
func (s *Service) TogglePacked(_ context.Context, item string) bool {
	v := s.packed.Toggle(item)
	s.publish(sse.KindPackingUpdated, map[string]string{"item": item})
	return v
}
