package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes a `{"detail": "..."}` error body.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) {
	WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}

// WriteData writes data wrapped in a successful `{success, data}` envelope.
func WriteData[T any](w http.ResponseWriter, data T, statusCode int) (int, error) {
	return WriteJSON(w, models.Envelope[T]{Success: true, Data: data}, statusCode)
}
