// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/internal/app"
	"github.com/MKhiriev/go-stock-dashboard/internal/devserver"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

const (
	maxUploadSize = 10 << 20

	fieldFile         = "historical_demand"
	fieldOrderCost    = "custo_pedido"
	fieldHoldingCost  = "custo_estocagem"
	fieldProductName  = "nome_produto"
	fieldLeadTime     = "lead_time"
	fieldServiceLevel = "service_level"
)

func (h *Handler) optimize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	filename, content, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err, "invalid upload")
		return
	}

	in := devserver.EOQInput{ProductName: optionalText(r, fieldProductName)}
	if in.OrderCost, err = requiredFloat(r, fieldOrderCost); err != nil {
		writeError(w, r, err, "invalid order cost")
		return
	}
	if in.HoldingCost, err = requiredFloat(r, fieldHoldingCost); err != nil {
		writeError(w, r, err, "invalid holding cost")
		return
	}
	if raw := formValue(r, fieldLeadTime); raw != "" {
		lead, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %s", devserver.ErrInvalidParameters, fieldLeadTime), "invalid lead time")
			return
		}
		in.LeadTime = &lead
	}
	if in.ServiceLevel, err = serviceLevel(r); err != nil {
		writeError(w, r, err, "invalid service level")
		return
	}

	result, err := h.backend.Optimize(ctx, userID, filename, content, in)
	if err != nil {
		writeError(w, r, err, "optimization failed")
		return
	}

	utils.WriteJSON(w, models.Envelope[models.OptimizationResult]{Success: true, Message: app.MsgOptimized, Data: result}, http.StatusOK)
}

func (h *Handler) calculateROP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	filename, content, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err, "invalid upload")
		return
	}

	lead, err := strconv.Atoi(formValue(r, fieldLeadTime))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %s", devserver.ErrInvalidParameters, fieldLeadTime), "invalid lead time")
		return
	}
	level, err := serviceLevel(r)
	if err != nil {
		writeError(w, r, err, "invalid service level")
		return
	}

	result, err := h.backend.CalculateROP(ctx, userID, filename, content, devserver.ROPInput{
		LeadTime:     lead,
		ServiceLevel: level,
		ProductName:  optionalText(r, fieldProductName),
	})
	if err != nil {
		writeError(w, r, err, "ROP calculation failed")
		return
	}

	utils.WriteJSON(w, models.Envelope[models.OptimizationResult]{Success: true, Message: app.MsgROPCalculated, Data: result}, http.StatusOK)
}

// readUpload parses the multipart body and returns the demand file.
func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", nil, fmt.Errorf("%w: %w", devserver.ErrInvalidParameters, err)
	}

	file, header, err := r.FormFile(fieldFile)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", devserver.ErrInvalidParameters, fieldFile)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", devserver.ErrInvalidDemandFile, err)
	}
	return header.Filename, content, nil
}

func formValue(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

func optionalText(r *http.Request, field string) *string {
	if v := formValue(r, field); v != "" {
		return &v
	}
	return nil
}

// parseDecimal accepts both "2.5" and "2,5".
func parseDecimal(raw string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
}

func requiredFloat(r *http.Request, field string) (float64, error) {
	v, err := parseDecimal(formValue(r, field))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", devserver.ErrInvalidParameters, field)
	}
	return v, nil
}

func serviceLevel(r *http.Request) (float64, error) {
	raw := formValue(r, fieldServiceLevel)
	if raw == "" {
		return devserver.DefaultServiceLevel, nil
	}
	return requiredFloat(r, fieldServiceLevel)
}
