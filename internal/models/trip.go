// Package models defines the domain types for the trip planner.
package models

// ItineraryStatus marks whether a day has any concrete plan yet.
type ItineraryStatus string

// Day statuses.
const (
	StatusPlanned   ItineraryStatus = "Planned"
	StatusUnplanned ItineraryStatus = "Unplanned"
)

// ItineraryItem is one timed entry in a day plan.
//
// Time is either "HH:MM" or a free-form sentinel such as "上午" ("morning").
// Items within a day are ordered by byte-wise comparison of Time; sentinels
// sort wherever their UTF-8 bytes land relative to digit strings, which is
// the behaviour the planner relies on.
type ItineraryItem struct {
	ID       string `json:"id,omitempty"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Detail   string `json:"detail"`
	IsBackup bool   `json:"isBackup,omitempty"`
}

// DayPlan is one calendar day of the trip. DayLabel ("D1", "D2", ...) is the
// identity key; lookups assume it is unique across the collection.
type DayPlan struct {
	DayLabel  string          `json:"dayLabel"`
	Date      string          `json:"date"`
	Theme     string          `json:"theme"`
	ThemeIcon string          `json:"themeIcon"`
	Status    ItineraryStatus `json:"status"`
	Items     []ItineraryItem `json:"items"`
}

// ExpenseCategory buckets an expense for the breakdown chart.
type ExpenseCategory string

// Expense categories, in canonical display order.
const (
	CategoryFood          ExpenseCategory = "Food"
	CategoryTransport     ExpenseCategory = "Transport"
	CategoryShopping      ExpenseCategory = "Shopping"
	CategoryTicket        ExpenseCategory = "Ticket"
	CategoryAccommodation ExpenseCategory = "Accommodation"
	CategoryActivity      ExpenseCategory = "Activity"
	CategoryOther         ExpenseCategory = "Other"
)

// Categories lists every valid expense category in canonical order.
func Categories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryTicket,
		CategoryAccommodation,
		CategoryActivity,
		CategoryOther,
	}
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c ExpenseCategory) bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// ExpenseRecord is a single ledger entry. Amount is in JPY. The ID is
// caller-supplied (typically a timestamp-derived token) and never reused.
type ExpenseRecord struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Item     string          `json:"item"`
	Category ExpenseCategory `json:"category"`
	Amount   int64           `json:"amount"`
	Payer    string          `json:"payer"`
}

// FlightDetails describes one leg of the trip.
type FlightDetails struct {
	Direction   string `json:"direction"` // "Departure" or "Return"
	Date        string `json:"date"`
	Time        string `json:"time"`
	AirportCode string `json:"airportCode"`
	City        string `json:"city"`
}

// AccommodationDetails describes the lodging booking.
type AccommodationDetails struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Period   string `json:"period"`
	Nights   int    `json:"nights"`
}

// Costs holds the fixed pre-trip costs in TWD.
type Costs struct {
	FlightTotal            int64 `json:"flightTotal"`
	FlightPerPerson        int64 `json:"flightPerPerson"`
	AccommodationTotal     int64 `json:"accommodationTotal"`
	AccommodationPerPerson int64 `json:"accommodationPerPerson"`
}

// Snapshot is the single unit of durable storage: everything the user can
// mutate, aggregated into one JSON object. There is no version field; a
// loader applies each top-level field only when present and non-zero.
type Snapshot struct {
	Itinerary    []DayPlan       `json:"itinerary"`
	Expenses     []ExpenseRecord `json:"expenses"`
	FoodList     []string        `json:"foodList"`
	ExchangeRate float64         `json:"exchangeRate"`
	PackedItems  map[string]bool `json:"packedItems"`
}
