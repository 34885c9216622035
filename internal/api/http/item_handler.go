package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/service"
)

type ItemHandler struct {
	items service.ItemService
}

func NewItemHandler(items service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var item domain.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}
	created, err := h.items.Add(r.Context(), actor, &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}
	var patch domain.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}
	patch.ID = itemID
	updated, err := h.items.Update(r.Context(), actor, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := h.items.GetByID(r.Context(), actor, itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) GetAllByOwner(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.items.GetAllByOwner(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.Search(r.Context(), r.URL.Query().Get("text"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type createCommentRequest struct {
	Text string `json:"text"`
}

func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}
	comment, err := h.items.AddComment(r.Context(), actor, itemID, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
