package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-stock-dashboard/internal/app"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/go-chi/chi/v5"
)

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	history := h.backend.History(r.Context(), userID)
	count := len(history)

	utils.WriteJSON(w, models.Envelope[[]models.OptimizationResult]{Success: true, Count: &count, Data: history}, http.StatusOK)
}

func (h *Handler) getCalculation(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := calculationID(r)
	if err != nil {
		writeError(w, r, err, "invalid calculation id")
		return
	}

	result, err := h.backend.Calculation(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err, "calculation lookup failed")
		return
	}

	utils.WriteData(w, result, http.StatusOK)
}

func (h *Handler) deleteCalculation(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := calculationID(r)
	if err != nil {
		writeError(w, r, err, "invalid calculation id")
		return
	}

	if err = h.backend.DeleteCalculation(r.Context(), userID, id); err != nil {
		writeError(w, r, err, "calculation delete failed")
		return
	}

	utils.WriteJSON(w, deleteResponse{Success: true, Message: fmt.Sprintf(app.MsgCalculationDeleted, id)}, http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	utils.WriteData(w, h.backend.Stats(r.Context(), userID), http.StatusOK)
}

func calculationID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidCalculationID
	}
	return id, nil
}
