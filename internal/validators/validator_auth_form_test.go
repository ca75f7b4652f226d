package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFormValidator_Login(t *testing.T) {
	v := NewAuthFormValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.LoginForm{Email: "ana@example.com", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginForm{Email: "", Password: "x"}), ErrMissingEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginForm{Email: "ana", Password: "x"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginForm{Email: "ana@example.com"}), ErrMissingPassword)
}

func TestAuthFormValidator_Register(t *testing.T) {
	valid := models.RegisterForm{
		FullName:        "Ana Souza",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	tests := []struct {
		name    string
		mutate  func(f *models.RegisterForm)
		wantErr error
	}{
		{"valid", func(f *models.RegisterForm) {}, nil},
		{"blank name", func(f *models.RegisterForm) { f.FullName = "   " }, ErrMissingFullName},
		{"display name in email", func(f *models.RegisterForm) { f.Email = "Ana <ana@example.com>" }, ErrInvalidEmail},
		{"short password", func(f *models.RegisterForm) { f.Password, f.ConfirmPassword = "12345", "12345" }, ErrShortPassword},
		{"mismatch", func(f *models.RegisterForm) { f.ConfirmPassword = "secret2" }, ErrPasswordMismatch},
	}

	v := NewAuthFormValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			err := v.Validate(context.Background(), form)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthFormValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewAuthFormValidator().Validate(context.Background(), models.EOQForm{}), ErrUnsupportedType)
}

func TestRegisterForm_Request(t *testing.T) {
	req := models.RegisterForm{FullName: "Ana", Email: "a@b.c", Password: "p"}.Request()
	assert.Nil(t, req.Company)

	req = models.RegisterForm{FullName: "Ana", Email: "a@b.c", Password: "p", Company: "Loja"}.Request()
	require.NotNil(t, req.Company)
	assert.Equal(t, "Loja", *req.Company)
}
