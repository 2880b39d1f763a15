package http

import (
	"net/http"
	"strconv"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

type ItemHandler struct {
	svc      service.ItemService
	validate *validator.Validate
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type itemRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Status           string `json:"status" validate:"omitempty,oneof=available rented maintenance"`
	MonthlyRateCents int64  `json:"monthly_rate_cents" validate:"gte=0"`
	Quantity         int32  `json:"quantity" validate:"gte=0"`
}

type itemDetailResponse struct {
	Item  *domain.Item           `json:"item"`
	Units []domain.InventoryUnit `json:"units"`
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := &domain.Item{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Status:           domain.ItemStatus(req.Status),
		MonthlyRateCents: req.MonthlyRateCents,
		Quantity:         req.Quantity,
	}
	created, err := h.svc.CreateItem(r.Context(), item)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, units, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemDetailResponse{Item: item, Units: units})
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := &domain.Item{
		ID:               id,
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Status:           domain.ItemStatus(req.Status),
		MonthlyRateCents: req.MonthlyRateCents,
		Quantity:         req.Quantity,
	}
	updated, err := h.svc.UpdateItem(r.Context(), item)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
