package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/models"
)

// AuthFormValidator checks login and registration forms.
type AuthFormValidator struct{}

func NewAuthFormValidator() *AuthFormValidator {
	return &AuthFormValidator{}
}

func (v *AuthFormValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.LoginForm:
		return v.validateLogin(value, fields...)
	case *models.LoginForm:
		return v.validateLogin(*value, fields...)
	case models.RegisterForm:
		return v.validateRegister(value, fields...)
	case *models.RegisterForm:
		return v.validateRegister(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AuthFormValidator) validateLogin(form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(form.Email); err != nil {
				return err
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrMissingPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthFormValidator) validateRegister(form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if strings.TrimSpace(form.FullName) == "" {
				return ErrMissingFullName
			}
		case FieldEmail:
			if err := validateEmail(form.Email); err != nil {
				return err
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrMissingPassword
			}
			if len([]rune(form.Password)) < MinPasswordLength {
				return ErrShortPassword
			}
		case FieldConfirmPassword:
			if form.Password != form.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(raw string) error {
	email := strings.TrimSpace(raw)
	if email == "" {
		return ErrMissingEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
