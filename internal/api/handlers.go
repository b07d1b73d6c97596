package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lomkinju/qienn/internal/apperr"
	"github.com/lomkinju/qienn/internal/refdata"
	"github.com/lomkinju/qienn/internal/tripservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *tripservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *tripservice.Service) *Handler {
	return &Handler{svc: svc}
}

// decode reads a JSON body into req and runs its validation, writing the
// error response itself. Returns false when the handler should bail out.
func decode(w http.ResponseWriter, r *http.Request, req interface{ Validate() error }) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return false
	}
	return true
}

// pathParam extracts a chi URL parameter, unescaping encoded characters
// (CJK food names arrive percent-encoded from some clients).
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// GetTrip handles GET /api/trip.
//
//	@Summary		Trip header: flights, lodging, costs, countdown
//	@Tags			trip
//	@Produce		json
//	@Success		200	{object}	tripservice.TripSummary
//	@Security		BearerAuth
//	@Router			/trip [get]
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Summary(r.Context()))
}

// ListItinerary handles GET /api/itinerary.
//
//	@Summary		List all day plans with time-sorted items
//	@Tags			itinerary
//	@Produce		json
//	@Security		BearerAuth
//	@Router			/itinerary [get]
func (h *Handler) ListItinerary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"days": h.svc.Days(r.Context()),
	})
}

// AddItineraryItem handles POST /api/itinerary/{dayLabel}/items.
//
//	@Summary		Add an item to a day plan
//	@Tags			itinerary
//	@Accept			json
//	@Produce		json
//	@Param			dayLabel	path		string					true	"Day label, e.g. D1"
//	@Param			body		body		AddItineraryItemRequest	true	"Item to add"
//	@Success		201			{object}	models.ItineraryItem
//	@Failure		400			{object}	errResponse
//	@Failure		404			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/itinerary/{dayLabel}/items [post]
func (h *Handler) AddItineraryItem(w http.ResponseWriter, r *http.Request) {
	dayLabel := pathParam(r, "dayLabel")
	var req AddItineraryItemRequest
	if !decode(w, r, &req) {
		return
	}
	added, ok := h.svc.AddItem(r.Context(), dayLabel, req.item())
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("unknown day"))
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// UpdateItineraryItem handles PUT /api/itinerary/{dayLabel}/items/{itemID}.
//
//	@Summary		Replace an itinerary item by ID
//	@Tags			itinerary
//	@Accept			json
//	@Produce		json
//	@Param			dayLabel	path		string					true	"Day label"
//	@Param			itemID		path		string					true	"Item ID"
//	@Param			body		body		AddItineraryItemRequest	true	"New item content"
//	@Success		200			{object}	models.ItineraryItem
//	@Failure		400			{object}	errResponse
//	@Failure		404			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/itinerary/{dayLabel}/items/{itemID} [put]
func (h *Handler) UpdateItineraryItem(w http.ResponseWriter, r *http.Request) {
	dayLabel := pathParam(r, "dayLabel")
	itemID := pathParam(r, "itemID")
	var req AddItineraryItemRequest
	if !decode(w, r, &req) {
		return
	}
	item := req.item()
	if !h.svc.UpdateItem(r.Context(), dayLabel, itemID, item) {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	item.ID = itemID
	writeJSON(w, http.StatusOK, item)
}

// DeleteItineraryItem handles DELETE /api/itinerary/{dayLabel}/items/{itemID}.
//
//	@Summary		Delete an itinerary item by ID
//	@Tags			itinerary
//	@Param			dayLabel	path	string	true	"Day label"
//	@Param			itemID		path	string	true	"Item ID"
//	@Success		204			"Item deleted"
//	@Failure		404			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/itinerary/{dayLabel}/items/{itemID} [delete]
func (h *Handler) DeleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	if !h.svc.DeleteItem(r.Context(), pathParam(r, "dayLabel"), pathParam(r, "itemID")) {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListExpenses handles GET /api/expenses.
//
//	@Summary		Expense report for a date range
//	@Tags			expenses
//	@Produce		json
//	@Param			start	query		string	false	"Start date YYYY-MM-DD (inclusive)"
//	@Param			end		query		string	false	"End date YYYY-MM-DD (inclusive)"
//	@Success		200		{object}	tripservice.ExpenseReport
//	@Security		BearerAuth
//	@Router			/expenses [get]
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.svc.Expenses(r.Context(), q.Get("start"), q.Get("end")))
}

// CreateExpense handles POST /api/expenses.
//
//	@Summary		Record an expense
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateExpenseRequest	true	"Expense to record"
//	@Success		201		{object}	models.ExpenseRecord
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/expenses [post]
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if !decode(w, r, &req) {
		return
	}
	rec := h.svc.AddExpense(r.Context(), req.record())
	writeJSON(w, http.StatusCreated, rec)
}

// DeleteExpense handles DELETE /api/expenses/{id}.
//
//	@Summary		Delete an expense by ID
//	@Tags			expenses
//	@Param			id	path	string	true	"Expense ID"
//	@Success		204	"Expense deleted"
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id} [delete]
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if !h.svc.DeleteExpense(r.Context(), pathParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetRate handles PUT /api/rate.
//
//	@Summary		Replace the JPY→TWD exchange rate
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SetRateRequest	true	"New rate"
//	@Success		200		{object}	map[string]float64
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/rate [put]
func (h *Handler) SetRate(w http.ResponseWriter, r *http.Request) {
	var req SetRateRequest
	if !decode(w, r, &req) {
		return
	}
	h.svc.SetRate(r.Context(), req.Rate)
	writeJSON(w, http.StatusOK, map[string]float64{"exchangeRate": req.Rate})
}

// ListFood handles GET /api/food.
//
//	@Summary		List wheel entries in insertion order
//	@Tags			food
//	@Produce		json
//	@Security		BearerAuth
//	@Router			/food [get]
func (h *Handler) ListFood(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"foods": h.svc.Foods(r.Context()),
	})
}

// AddFood handles POST /api/food.
//
//	@Summary		Add a wheel entry
//	@Tags			food
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AddFoodRequest	true	"Food to add"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	errResponse
//	@Failure		409		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/food [post]
func (h *Handler) AddFood(w http.ResponseWriter, r *http.Request) {
	var req AddFoodRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.svc.AddFood(r.Context(), req.Name) {
		writeJSON(w, http.StatusConflict, errorBody("already on the wheel"))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

// DeleteFood handles DELETE /api/food/{name}.
//
//	@Summary		Remove a wheel entry by exact name
//	@Tags			food
//	@Param			name	path	string	true	"Food name"
//	@Success		204		"Food removed"
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/food/{name} [delete]
func (h *Handler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	if !h.svc.DeleteFood(r.Context(), pathParam(r, "name")) {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPacking handles GET /api/packing.
//
//	@Summary		Packing checklist: catalog, flags, progress
//	@Tags			packing
//	@Produce		json
//	@Success		200	{object}	tripservice.PackingState
//	@Security		BearerAuth
//	@Router			/packing [get]
func (h *Handler) GetPacking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Packing(r.Context()))
}

// TogglePacked handles POST /api/packing/toggle.
//
//	@Summary		Flip one packing flag
//	@Tags			packing
//	@Accept			json
//	@Produce		json
//	@Param			body	body		TogglePackedRequest	true	"Item to toggle"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/packing/toggle [post]
func (h *Handler) TogglePacked(w http.ResponseWriter, r *http.Request) {
	var req TogglePackedRequest
	if !decode(w, r, &req) {
		return
	}
	packed := h.svc.TogglePacked(r.Context(), req.Item)
	writeJSON(w, http.StatusOK, map[string]any{
		"item":   req.Item,
		"packed": packed,
	})
}

// SpinWheel handles POST /api/wheel/spin.
//
//	@Summary		Spin the food roulette wheel
//	@Tags			wheel
//	@Produce		json
//	@Success		200	{object}	roulette.Result
//	@Failure		400	{object}	errResponse
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/wheel/spin [post]
func (h *Handler) SpinWheel(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Spin(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrEmptyWheel):
			writeJSON(w, http.StatusBadRequest, errorBody("food list is empty"))
		case errors.Is(err, apperr.ErrSpinInProgress):
			writeJSON(w, http.StatusConflict, errorBody("spin already in progress"))
		default:
			slog.Error("spin failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetWheel handles GET /api/wheel.
//
//	@Summary		Current wheel state plus the historical winner tally
//	@Tags			wheel
//	@Produce		json
//	@Security		BearerAuth
//	@Router			/wheel [get]
func (h *Handler) GetWheel(w http.ResponseWriter, r *http.Request) {
	tally, err := h.svc.WinnerTally(r.Context())
	if err != nil {
		slog.Error("winner tally failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"state": h.svc.WheelState(r.Context()),
		"tally": tally,
	})
}

// Save handles POST /api/save.
//
//	@Summary		Persist the whole trip state to the snapshot slot
//	@Tags			snapshot
//	@Produce		json
//	@Success		200	{object}	models.Snapshot
//	@Failure		500	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/save [post]
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Save(r.Context())
	if err != nil {
		slog.Error("save failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// History handles GET /api/history.
//
//	@Summary		Recent save history, newest first
//	@Tags			snapshot
//	@Produce		json
//	@Param			limit	query	int	false	"Max entries (default 20)"
//	@Security		BearerAuth
//	@Router			/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := h.svc.SaveHistory(r.Context(), limit)
	if err != nil {
		slog.Error("save history failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"saves": rows,
	})
}

// Reference handles GET /api/reference.
//
//	@Summary		Static reference catalogs: links, phrases, weather
//	@Tags			reference
//	@Produce		json
//	@Security		BearerAuth
//	@Router			/reference [get]
func (h *Handler) Reference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"links":   refdata.Links(),
		"phrases": refdata.Phrases(),
		"weather": refdata.Forecast(),
	})
}

// MapSearch handles GET /api/reference/map.
//
//	@Summary		Build a map search URL for a free-text location
//	@Tags			reference
//	@Produce		json
//	@Param			location	query		string	true	"Location text"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/reference/map [get]
func (h *Handler) MapSearch(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'location' is required"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"url": refdata.MapSearchURL(location),
	})
}
