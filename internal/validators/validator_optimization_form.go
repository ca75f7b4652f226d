package validators

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

// OptimizationFormValidator checks EOQ and ROP inputs before any request is
// made. Raw forms are parsed into params; params are range-checked again so
// that programmatic callers get the same guarantees.
type OptimizationFormValidator struct{}

func NewOptimizationFormValidator() *OptimizationFormValidator {
	return &OptimizationFormValidator{}
}

func (v *OptimizationFormValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.EOQForm:
		_, err := v.parseEOQ(value, fields...)
		return err
	case *models.EOQForm:
		_, err := v.parseEOQ(*value, fields...)
		return err
	case models.ROPForm:
		_, err := v.parseROP(value, fields...)
		return err
	case *models.ROPForm:
		_, err := v.parseROP(*value, fields...)
		return err
	case models.EOQParams:
		return v.validateEOQParams(value, fields...)
	case models.ROPParams:
		return v.validateROPParams(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// ParseEOQ validates every EOQ field and returns the typed params.
func (v *OptimizationFormValidator) ParseEOQ(ctx context.Context, form models.EOQForm) (models.EOQParams, error) {
	return v.parseEOQ(form)
}

// ParseROP validates every ROP field and returns the typed params.
func (v *OptimizationFormValidator) ParseROP(ctx context.Context, form models.ROPForm) (models.ROPParams, error) {
	return v.parseROP(form)
}

func (v *OptimizationFormValidator) parseEOQ(form models.EOQForm, fields ...string) (models.EOQParams, error) {
	if len(fields) == 0 {
		fields = []string{FieldOrderCost, FieldHoldingCost, FieldFile}
	}

	params := models.EOQParams{
		ProductName: strings.TrimSpace(form.ProductName),
		FilePath:    strings.TrimSpace(form.FilePath),
	}

	for _, f := range fields {
		switch f {
		case FieldOrderCost:
			cost, err := parsePositive(form.OrderCost, ErrMissingOrderCost, ErrInvalidOrderCost)
			if err != nil {
				return models.EOQParams{}, err
			}
			params.OrderCost = cost
		case FieldHoldingCost:
			cost, err := parsePositive(form.HoldingCost, ErrMissingHoldingCost, ErrInvalidHoldingCost)
			if err != nil {
				return models.EOQParams{}, err
			}
			params.HoldingCost = cost
		case FieldFile:
			if err := validateCSVPath(params.FilePath); err != nil {
				return models.EOQParams{}, err
			}
		default:
			return models.EOQParams{}, ErrUnknownField
		}
	}

	return params, nil
}

func (v *OptimizationFormValidator) parseROP(form models.ROPForm, fields ...string) (models.ROPParams, error) {
	if len(fields) == 0 {
		fields = []string{FieldLeadTime, FieldServiceLevel, FieldFile}
	}

	params := models.ROPParams{
		ProductName: strings.TrimSpace(form.ProductName),
		FilePath:    strings.TrimSpace(form.FilePath),
	}

	for _, f := range fields {
		switch f {
		case FieldLeadTime:
			raw := strings.TrimSpace(form.LeadTime)
			if raw == "" {
				return models.ROPParams{}, ErrMissingLeadTime
			}
			days, err := strconv.Atoi(raw)
			if err != nil || days < MinLeadTime || days > MaxLeadTime {
				return models.ROPParams{}, ErrInvalidLeadTime
			}
			params.LeadTime = days
		case FieldServiceLevel:
			raw := strings.TrimSpace(form.ServiceLevel)
			if raw == "" {
				return models.ROPParams{}, ErrMissingServiceLevel
			}
			level, err := parseNumber(raw)
			if err != nil || !serviceLevelInRange(level) {
				return models.ROPParams{}, ErrInvalidServiceLevel
			}
			params.ServiceLevel = level
		case FieldFile:
			if err := validateCSVPath(params.FilePath); err != nil {
				return models.ROPParams{}, err
			}
		default:
			return models.ROPParams{}, ErrUnknownField
		}
	}

	return params, nil
}

func (v *OptimizationFormValidator) validateEOQParams(params models.EOQParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrderCost, FieldHoldingCost, FieldFile}
	}

	for _, f := range fields {
		switch f {
		case FieldOrderCost:
			if !isPositive(params.OrderCost) {
				return ErrInvalidOrderCost
			}
		case FieldHoldingCost:
			if !isPositive(params.HoldingCost) {
				return ErrInvalidHoldingCost
			}
		case FieldFile:
			if err := validateCSVPath(params.FilePath); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *OptimizationFormValidator) validateROPParams(params models.ROPParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLeadTime, FieldServiceLevel, FieldFile}
	}

	for _, f := range fields {
		switch f {
		case FieldLeadTime:
			if params.LeadTime < MinLeadTime || params.LeadTime > MaxLeadTime {
				return ErrInvalidLeadTime
			}
		case FieldServiceLevel:
			if !serviceLevelInRange(params.ServiceLevel) {
				return ErrInvalidServiceLevel
			}
		case FieldFile:
			if err := validateCSVPath(params.FilePath); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// parseNumber accepts both "75.5" and the pt-BR "75,5".
func parseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	return strconv.ParseFloat(raw, 64)
}

func parsePositive(raw string, missing, invalid error) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, missing
	}
	value, err := parseNumber(raw)
	if err != nil || !isPositive(value) {
		return 0, invalid
	}
	return value, nil
}

func isPositive(value float64) bool {
	return value > 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}

func serviceLevelInRange(level float64) bool {
	return level >= MinServiceLevel && level <= MaxServiceLevel
}

func validateCSVPath(path string) error {
	if path == "" {
		return ErrMissingFile
	}
	if !strings.EqualFold(filepath.Ext(path), csvExtension) {
		return ErrInvalidFileExtension
	}
	return nil
}
