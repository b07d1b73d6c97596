// Package ledger keeps the expense records and the aggregation rules over
// them: date-range filtering, JPY totals, per-category buckets, and JPY→TWD
// conversion against a single user-editable rate.
package ledger

import (
	"math"
	"sync"

	"github.com/lomkinju/qienn/internal/models"
)

// Ledger owns the expense collection, newest record first, plus the
// process-wide exchange rate. Reads return copies.
type Ledger struct {
	mu      sync.Mutex
	records []models.ExpenseRecord
	rate    float64
}

// New creates a Ledger with the given records and JPY→TWD rate.
func New(records []models.ExpenseRecord, rate float64) *Ledger {
	l := &Ledger{rate: rate}
	l.ReplaceRecords(records)
	return l
}

// Add prepends a record so the newest entry lists first. The caller supplies
// a unique ID; the ledger does not check uniqueness.
func (l *Ledger) Add(rec models.ExpenseRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make([]models.ExpenseRecord, 0, len(l.records)+1)
	next = append(next, rec)
	next = append(next, l.records...)
	l.records = next
}

// Delete removes the first record with the given ID. Absent IDs are a
// silent no-op; the return value only tells the caller whether anything
// changed.
func (l *Ledger) Delete(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, r := range l.records {
		if r.ID == id {
			next := make([]models.ExpenseRecord, 0, len(l.records)-1)
			next = append(next, l.records[:i]...)
			next = append(next, l.records[i+1:]...)
			l.records = next
			return true
		}
	}
	return false
}

// Records returns a copy of every record, newest first.
func (l *Ledger) Records() []models.ExpenseRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.ExpenseRecord, len(l.records))
	copy(out, l.records)
	return out
}

// ReplaceRecords swaps the whole collection, e.g. from a loaded snapshot.
func (l *Ledger) ReplaceRecords(records []models.ExpenseRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = make([]models.ExpenseRecord, len(records))
	copy(l.records, records)
}

// Rate returns the current JPY→TWD rate.
func (l *Ledger) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rate
}

// SetRate replaces the rate. Every TWD figure is derived on read, so the
// change retroactively applies to all displayed totals.
func (l *Ledger) SetRate(rate float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rate = rate
}

// FilterByDateRange returns the records whose date falls in [start, end].
// Dates are fixed-width "YYYY-MM-DD", so plain string comparison is exact.
// An empty bound means unbounded on that side.
func FilterByDateRange(records []models.ExpenseRecord, start, end string) []models.ExpenseRecord {
	out := make([]models.ExpenseRecord, 0, len(records))
	for _, r := range records {
		if start != "" && r.Date < start {
			continue
		}
		if end != "" && r.Date > end {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Total sums the JPY amounts of the given records.
func Total(records []models.ExpenseRecord) int64 {
	var sum int64
	for _, r := range records {
		sum += r.Amount
	}
	return sum
}

// Convert derives the TWD value for a JPY amount. Rounding is
// half-away-from-zero (math.Round).
func Convert(jpy int64, rate float64) int64 {
	return int64(math.Round(float64(jpy) * rate))
}

// CategoryBucket is one slice of the category breakdown.
type CategoryBucket struct {
	Category models.ExpenseCategory `json:"category"`
	Amount   int64                  `json:"amount"`
}

// AggregateByCategory sums amounts per category in a single pass. Categories
// with no records are omitted; buckets come back in canonical category order
// so chart output is stable.
func AggregateByCategory(records []models.ExpenseRecord) []CategoryBucket {
	sums := make(map[models.ExpenseCategory]int64)
	for _, r := range records {
		sums[r.Category] += r.Amount
	}
	out := make([]CategoryBucket, 0, len(sums))
	for _, c := range models.Categories() {
		if amt, ok := sums[c]; ok {
			out = append(out, CategoryBucket{Category: c, Amount: amt})
		}
	}
	return out
}

// AveragePerRecord is round(total/count), or 0 for an empty set.
func AveragePerRecord(records []models.ExpenseRecord) int64 {
	if len(records) == 0 {
		return 0
	}
	return int64(math.Round(float64(Total(records)) / float64(len(records))))
}
