package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lomkinju/qienn/internal/tripservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *tripservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Trip header.
	r.Get("/trip", h.GetTrip)

	// Itinerary.
	r.Get("/itinerary", h.ListItinerary)
	r.Post("/itinerary/{dayLabel}/items", h.AddItineraryItem)
	r.Put("/itinerary/{dayLabel}/items/{itemID}", h.UpdateItineraryItem)
	r.Delete("/itinerary/{dayLabel}/items/{itemID}", h.DeleteItineraryItem)

	// Expense ledger.
	r.Get("/expenses", h.ListExpenses)
	r.Post("/expenses", h.CreateExpense)
	r.Delete("/expenses/{id}", h.DeleteExpense)
	r.Put("/rate", h.SetRate)

	// Food list and wheel.
	r.Get("/food", h.ListFood)
	r.Post("/food", h.AddFood)
	r.Delete("/food/{name}", h.DeleteFood)
	r.Post("/wheel/spin", h.SpinWheel)
	r.Get("/wheel", h.GetWheel)

	// Packing checklist.
	r.Get("/packing", h.GetPacking)
	r.Post("/packing/toggle", h.TogglePacked)

	// Snapshot persistence.
	r.Post("/save", h.Save)
	r.Get("/history", h.History)

	// Static reference catalogs.
	r.Get("/reference", h.Reference)
	r.Get("/reference/map", h.MapSearch)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
