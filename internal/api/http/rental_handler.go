package http

import (
	"net/http"
	"time"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// parseDate parses an optional YYYY-MM-DD value; empty means "unset".
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}

type RentalHandler struct {
	svc      service.RentalService
	validate *validator.Validate
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type createRentalRequest struct {
	ItemID             int64  `json:"item_id" validate:"required"`
	CustomerID         int64  `json:"customer_id" validate:"required"`
	Quantity           int32  `json:"quantity" validate:"required,gt=0"`
	StartDate          string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate            string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	DepositAmountCents int64  `json:"deposit_amount_cents" validate:"gte=0"`
}

type extendRentalRequest struct {
	EndDate string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	startDate, _ := parseDate(req.StartDate)
	endDate, _ := parseDate(req.EndDate)

	rental := &domain.Rental{
		ItemID:             req.ItemID,
		CustomerID:         req.CustomerID,
		Quantity:           req.Quantity,
		StartDate:          startDate,
		EndDate:            endDate,
		DepositAmountCents: req.DepositAmountCents,
	}
	created, err := h.svc.CreateRental(r.Context(), rental)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	rental, err := h.svc.GetRental(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.ListRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

// Estimate projects the charge for returning all remaining units on the
// given date (query parameter return_date, defaulting to the rental's end
// date).
func (h *RentalHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	returnDate, err := parseDate(r.URL.Query().Get("return_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid return_date, expected YYYY-MM-DD")
		return
	}

	estimate, err := h.svc.EstimateCharge(r.Context(), id, returnDate)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, estimate)
}

func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req extendRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	endDate, _ := parseDate(req.EndDate)

	rental, err := h.svc.ExtendRental(r.Context(), id, endDate)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	rental, err := h.svc.CancelRental(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	if err := h.svc.DeleteRental(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
