package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input validation failure. Errors below
// wrap it, so callers can test errors.Is(err, ErrValidation) to tell local
// rejections from transport failures.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingOrderCost     = fmt.Errorf("%w: order cost is required", ErrValidation)
	ErrInvalidOrderCost     = fmt.Errorf("%w: order cost must be a number greater than zero", ErrValidation)
	ErrMissingHoldingCost   = fmt.Errorf("%w: holding cost is required", ErrValidation)
	ErrInvalidHoldingCost   = fmt.Errorf("%w: holding cost must be a number greater than zero", ErrValidation)
	ErrMissingLeadTime      = fmt.Errorf("%w: lead time is required", ErrValidation)
	ErrInvalidLeadTime      = fmt.Errorf("%w: lead time must be a whole number of days between 1 and 365", ErrValidation)
	ErrMissingServiceLevel  = fmt.Errorf("%w: service level is required", ErrValidation)
	ErrInvalidServiceLevel  = fmt.Errorf("%w: service level must be between 50 and 99.9 percent", ErrValidation)
	ErrMissingFile          = fmt.Errorf("%w: demand file is required", ErrValidation)
	ErrInvalidFileExtension = fmt.Errorf("%w: demand file must be a .csv file", ErrValidation)

	ErrMissingEmail     = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: email is invalid", ErrValidation)
	ErrMissingPassword  = fmt.Errorf("%w: password is required", ErrValidation)
	ErrShortPassword    = fmt.Errorf("%w: password is too short", ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrMissingFullName  = fmt.Errorf("%w: full name is required", ErrValidation)
	ErrInvalidHistoryID = fmt.Errorf("%w: history id must be positive", ErrValidation)
)
