package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	tokenString, err := GenerateJWTToken("test-issuer", 123, "ana@example.com", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if tokenString == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateAndParseJWTToken(tokenString, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if claims.Subject != "ana@example.com" {
		t.Errorf("expected subject ana@example.com, got %s", claims.Subject)
	}
	if claims.UserID != 123 {
		t.Errorf("expected user id 123, got %d", claims.UserID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "a@b.c", time.Hour, "key"},
		{"empty email", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "a@b.c", 0, "key"},
		{"empty key", "iss", "a@b.c", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, 1, tt.email, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	tokenString, _ := GenerateJWTToken("test-issuer", 1, "a@b.c", time.Hour, "correct-key")

	if _, err := ValidateAndParseJWTToken(tokenString, "wrong-key", "test-issuer"); err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	tokenString, _ := GenerateJWTToken("test-issuer", 1, "a@b.c", -time.Minute, "key")

	_, err := ValidateAndParseJWTToken(tokenString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	tokenString, _ := GenerateJWTToken("real-issuer", 1, "a@b.c", time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(tokenString, "key", "fake-issuer"); err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got %q, %v", tt.header, got, err)
		}
	}
}

func TestTokenExpiry(t *testing.T) {
	tokenString, _ := GenerateJWTToken("iss", 1, "a@b.c", time.Hour, "key")

	exp, err := TokenExpiry(tokenString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := time.Until(exp); d < 59*time.Minute || d > time.Hour {
		t.Errorf("unexpected expiry in %s", d)
	}

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("key"))
	if _, err := TokenExpiry(noExp); !errors.Is(err, ErrTokenWithoutExpiry) {
		t.Errorf("expected ErrTokenWithoutExpiry, got %v", err)
	}

	if _, err := TokenExpiry("garbage"); err == nil {
		t.Error("expected error for malformed token")
	}
}
