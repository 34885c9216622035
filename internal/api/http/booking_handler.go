package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	ItemID int64           `json:"item_id"`
	Start  domain.DateTime `json:"start"`
	End    domain.DateTime `json:"end"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}
	res, err := h.bookings.Create(r.Context(), actor, req.ItemID, req.Start, req.End)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *BookingHandler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	reservationID, err := pathID(r, "bookingId")
	if err != nil {
		writeError(w, err)
		return
	}
	approve, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: approved query parameter must be a boolean", domain.ErrInvalidRequest))
		return
	}
	res, err := h.bookings.Decide(r.Context(), actor, reservationID, approve)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	reservationID, err := pathID(r, "bookingId")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.bookings.GetByID(r.Context(), actor, reservationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *BookingHandler) ListByBooker(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.RoleBooker)
}

func (h *BookingHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.RoleOwner)
}

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request, role domain.Role) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	state := r.URL.Query().Get("state")
	if state == "" {
		state = string(domain.StateAll)
	}
	reservations, err := h.bookings.List(r.Context(), role, actor, state)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}
