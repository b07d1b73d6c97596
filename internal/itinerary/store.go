// Package itinerary holds the ordered collection of day plans and the
// mutation rules for their timed items.
//
// Ordering within a day is byte-wise string comparison of the item's Time
// field ("HH:MM" strings compare correctly that way; free-form sentinels such
// as "上午" sort by their UTF-8 bytes). Every mutation re-sorts the day with
// a stable sort, so items sharing a time keep their relative order.
package itinerary

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lomkinju/qienn/internal/models"
)

// Store owns the day-plan collection. All reads return deep copies; callers
// never observe a shared mutable slice.
type Store struct {
	mu   sync.Mutex
	days []models.DayPlan
	seq  int64
}

// New creates a Store seeded with the given day plans.
func New(days []models.DayPlan) *Store {
	s := &Store{}
	s.Replace(days)
	return s
}

// Replace swaps the whole collection, e.g. when applying a loaded snapshot.
// Items missing an ID (older snapshots predate item IDs) get one assigned.
func (s *Store) Replace(days []models.DayPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = cloneDays(days)
	for di := range s.days {
		sortItems(s.days[di].Items)
		for ii := range s.days[di].Items {
			if s.days[di].Items[ii].ID == "" {
				s.days[di].Items[ii].ID = s.nextIDLocked()
			}
		}
	}
}

// Days returns a deep copy of every day plan, items sorted.
func (s *Store) Days() []models.DayPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDays(s.days)
}

// Day returns a deep copy of the day with the given label.
func (s *Store) Day(dayLabel string) (models.DayPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.days {
		if d.DayLabel == dayLabel {
			return cloneDay(d), true
		}
	}
	return models.DayPlan{}, false
}

// AddItem inserts item into the named day and re-sorts. Unknown day labels
// are a silent no-op (fail-quiet, matching the rest of the store). Adding
// always marks the day Planned, even when it already is. An empty item ID is
// replaced with a fresh one; the (possibly updated) item is returned along
// with whether a day matched.
func (s *Store) AddItem(dayLabel string, item models.ItineraryItem) (models.ItineraryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	di := s.indexOfLocked(dayLabel)
	if di < 0 {
		return models.ItineraryItem{}, false
	}
	if item.ID == "" {
		item.ID = s.nextIDLocked()
	}
	day := cloneDay(s.days[di])
	day.Items = append(day.Items, item)
	sortItems(day.Items)
	day.Status = models.StatusPlanned
	s.days[di] = day
	return item, true
}

// UpdateItem replaces the item with the given ID, keeping the ID, then
// re-sorts the day. Unknown day or item IDs are a silent no-op. The result
// is always a fully re-sorted day; no guarantee where the edited item lands.
func (s *Store) UpdateItem(dayLabel, itemID string, item models.ItineraryItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	di := s.indexOfLocked(dayLabel)
	if di < 0 {
		return false
	}
	day := cloneDay(s.days[di])
	for ii := range day.Items {
		if day.Items[ii].ID == itemID {
			item.ID = itemID
			day.Items[ii] = item
			sortItems(day.Items)
			s.days[di] = day
			return true
		}
	}
	return false
}

// DeleteItem removes the item with the given ID from the named day.
// Unknown day or item IDs are a silent no-op.
func (s *Store) DeleteItem(dayLabel, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	di := s.indexOfLocked(dayLabel)
	if di < 0 {
		return false
	}
	day := cloneDay(s.days[di])
	for ii := range day.Items {
		if day.Items[ii].ID == itemID {
			day.Items = append(day.Items[:ii], day.Items[ii+1:]...)
			s.days[di] = day
			return true
		}
	}
	return false
}

func (s *Store) indexOfLocked(dayLabel string) int {
	for i, d := range s.days {
		if d.DayLabel == dayLabel {
			return i
		}
	}
	return -1
}

// nextIDLocked issues a timestamp-derived token, disambiguated by a counter
// so two items created in the same nanosecond still differ.
func (s *Store) nextIDLocked() string {
	s.seq++
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatInt(s.seq, 36)
}

// sortItems stable-sorts in place by byte-wise time comparison; equal times
// keep their relative order.
func sortItems(items []models.ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.Compare(items[i].Time, items[j].Time) < 0
	})
}

func cloneDay(d models.DayPlan) models.DayPlan {
	out := d
	out.Items = make([]models.ItineraryItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}

func cloneDays(days []models.DayPlan) []models.DayPlan {
	out := make([]models.DayPlan, len(days))
	for i, d := range days {
		out[i] = cloneDay(d)
	}
	return out
}
