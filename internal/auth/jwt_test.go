package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateToken("ingest-bot", RoleClient, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "ingest-bot" || claims.Role != RoleClient {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ExpiresAt == nil {
		t.Error("expected expiry to be set")
	}
}

func TestValidateRejects(t *testing.T) {
	svc := NewJWTService("secret")

	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("secret"))
	other, _ := NewJWTService("other").GenerateToken("a", RoleAdmin, time.Hour)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a", Issuer: issuer},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	wrongIssuer, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a", Issuer: "elsewhere"},
	}).SignedString([]byte("secret"))

	tests := map[string]string{
		"garbage":      "not-a-token",
		"expired":      expired,
		"wrong secret": other,
		"alg none":     none,
		"wrong issuer": wrongIssuer,
	}
	for name, token := range tests {
		if _, err := svc.ValidateToken(token); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestGenerateRequiresSubject(t *testing.T) {
	if _, err := NewJWTService("s").GenerateToken("", RoleAdmin, 0); err == nil {
		t.Fatal("expected error for empty subject")
	}
}
