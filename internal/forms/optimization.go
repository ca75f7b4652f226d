package forms

import (
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/service"
	"github.com/MKhiriev/go-stock-dashboard/internal/validators"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

// EOQController drives the Economic Order Quantity form.
type EOQController struct {
	*Controller[models.EOQForm, models.EOQParams]
}

func NewEOQController(svc service.ClientOptimizationService, validator *validators.OptimizationFormValidator, logger *logger.Logger) *EOQController {
	return &EOQController{newController(validator.ParseEOQ, svc.Optimize, logger)}
}

// ROPController drives the Reorder Point form.
type ROPController struct {
	*Controller[models.ROPForm, models.ROPParams]
}

func NewROPController(svc service.ClientOptimizationService, validator *validators.OptimizationFormValidator, logger *logger.Logger) *ROPController {
	return &ROPController{newController(validator.ParseROP, svc.CalculateROP, logger)}
}
