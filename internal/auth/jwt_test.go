package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestInitJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if err := InitJWTSecret(); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret() error = %v", err)
	}

	tokenString, err := GenerateJWT(42, "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	token, err := VerifyJWT(tokenString)
	if err != nil {
		t.Fatalf("VerifyJWT() error = %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}

	if userID, _ := claims["user_id"].(float64); uint(userID) != 42 {
		t.Errorf("expected user_id 42, got %v", claims["user_id"])
	}
	if claims["email"] != "alice@example.com" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret() error = %v", err)
	}

	if _, err := VerifyJWT("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
