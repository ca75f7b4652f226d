package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "healthy", Version: h.version}, http.StatusOK)
}
