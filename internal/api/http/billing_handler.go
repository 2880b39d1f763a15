package http

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type BillingHandler struct {
	billingSvc service.BillingService
	rentalSvc  service.RentalService
	validate   *validator.Validate
}

func NewBillingHandler(billingSvc service.BillingService, rentalSvc service.RentalService) *BillingHandler {
	return &BillingHandler{
		billingSvc: billingSvc,
		rentalSvc:  rentalSvc,
		validate:   validator.New(),
	}
}

type returnRequest struct {
	RentalID int64 `json:"rental_id" validate:"required"`
	// Omitted quantity returns everything still out.
	Quantity   int32  `json:"quantity" validate:"omitempty,gt=0"`
	ReturnDate string `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
}

// Return processes a full or partial return and responds with the billing
// created for it.
func (h *BillingHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	returnDate, _ := parseDate(req.ReturnDate)

	billing, err := h.rentalSvc.ReturnUnits(r.Context(), req.RentalID, req.Quantity, returnDate)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, billing)
}

func (h *BillingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid billing id")
		return
	}

	billing, err := h.billingSvc.GetBilling(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, billing)
}

func (h *BillingHandler) List(w http.ResponseWriter, r *http.Request) {
	billings, err := h.billingSvc.ListBillings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, billings)
}

func (h *BillingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid billing id")
		return
	}

	billing, err := h.billingSvc.PayBilling(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, billing)
}

func (h *BillingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid billing id")
		return
	}

	if err := h.billingSvc.DeleteBilling(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
