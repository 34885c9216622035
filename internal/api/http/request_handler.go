package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/service"
)

type ItemRequestHandler struct {
	requests service.ItemRequestService
}

func NewItemRequestHandler(requests service.ItemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{requests: requests}
}

type createItemRequest struct {
	Description string `json:"description"`
}

func (h *ItemRequestHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}
	created, err := h.requests.Add(r.Context(), actor, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ItemRequestHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.requests.GetOwn(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ItemRequestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.requests.GetAll(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ItemRequestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requestID, err := pathID(r, "requestId")
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.requests.GetByID(r.Context(), actor, requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
