package api

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lomkinju/qienn/internal/models"
)

// AddItineraryItemRequest is the request body for adding an itinerary item.
// Time is usually "HH:MM" but free-form markers like "上午" are accepted.
type AddItineraryItemRequest struct {
	Time     string `json:"time" example:"10:40" validate:"required"`
	Activity string `json:"activity" example:"抵達成田機場" validate:"required"`
	Detail   string `json:"detail" example:"搭 Skyliner 進市區"`
	IsBackup bool   `json:"isBackup"`
}

// Validate implements the request validation rules.
func (r AddItineraryItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Time, validation.Required),
		validation.Field(&r.Activity, validation.Required),
	)
}

func (r AddItineraryItemRequest) item() models.ItineraryItem {
	return models.ItineraryItem{
		Time:     r.Time,
		Activity: r.Activity,
		Detail:   r.Detail,
		IsBackup: r.IsBackup,
	}
}

// CreateExpenseRequest is the request body for recording an expense.
type CreateExpenseRequest struct {
	Date     string `json:"date" example:"2026-02-09" validate:"required"`
	Item     string `json:"item" example:"一蘭拉麵" validate:"required"`
	Category string `json:"category" example:"Food" validate:"required"`
	Amount   int64  `json:"amount" example:"1200" validate:"required"`
	Payer    string `json:"payer" example:"我" validate:"required"`
}

// Validate implements the request validation rules.
func (r CreateExpenseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.Item, validation.Required),
		validation.Field(&r.Category, validation.Required, validation.By(knownCategory)),
		validation.Field(&r.Amount, validation.Required, validation.Min(1)),
		validation.Field(&r.Payer, validation.Required),
	)
}

func knownCategory(value any) error {
	c, _ := value.(string)
	if !models.ValidCategory(models.ExpenseCategory(c)) {
		return fmt.Errorf("unknown category %q", c)
	}
	return nil
}

func (r CreateExpenseRequest) record() models.ExpenseRecord {
	return models.ExpenseRecord{
		Date:     r.Date,
		Item:     r.Item,
		Category: models.ExpenseCategory(r.Category),
		Amount:   r.Amount,
		Payer:    r.Payer,
	}
}

// SetRateRequest is the request body for replacing the JPY→TWD rate.
type SetRateRequest struct {
	Rate float64 `json:"rate" example:"0.215" validate:"required"`
}

// Validate implements the request validation rules.
func (r SetRateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rate, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

// AddFoodRequest is the request body for adding a wheel entry.
type AddFoodRequest struct {
	Name string `json:"name" example:"拉麵" validate:"required"`
}

// Validate implements the request validation rules.
func (r AddFoodRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// TogglePackedRequest is the request body for flipping one packing flag.
type TogglePackedRequest struct {
	Item string `json:"item" example:"口罩" validate:"required"`
}

// Validate implements the request validation rules.
func (r TogglePackedRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Item, validation.Required),
	)
}
