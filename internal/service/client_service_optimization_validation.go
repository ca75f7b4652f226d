package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-dashboard/internal/validators"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

// OptimizationValidationService rejects out-of-range params before they reach
// the wrapped service.
type OptimizationValidationService struct {
	inner     ClientOptimizationService
	validator validators.Validator
}

func NewOptimizationValidationService() *OptimizationValidationService {
	return &OptimizationValidationService{
		validator: validators.NewOptimizationFormValidator(),
	}
}

func (v *OptimizationValidationService) Optimize(ctx context.Context, params models.EOQParams) (models.OptimizationResult, error) {
	if err := v.validator.Validate(ctx, params); err != nil {
		return models.OptimizationResult{}, fmt.Errorf("error during EOQ params validation: %w", err)
	}

	return v.inner.Optimize(ctx, params)
}

func (v *OptimizationValidationService) CalculateROP(ctx context.Context, params models.ROPParams) (models.OptimizationResult, error) {
	if err := v.validator.Validate(ctx, params); err != nil {
		return models.OptimizationResult{}, fmt.Errorf("error during ROP params validation: %w", err)
	}

	return v.inner.CalculateROP(ctx, params)
}

func (v *OptimizationValidationService) Wrap(inner ClientOptimizationService) ClientOptimizationService {
	v.inner = inner
	return v
}
