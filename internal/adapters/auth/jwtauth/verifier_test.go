package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestVerify_ValidToken(t *testing.T) {
	secret := []byte("test-secret")
	v := NewVerifier(secret)

	token := signToken(t, secret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "user@example.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier([]byte("right-secret"))

	token := signToken(t, []byte("wrong-secret"), jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	v := NewVerifier(secret)

	token := signToken(t, secret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	secret := []byte("test-secret")
	v := NewVerifier(secret)

	token := signToken(t, secret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); err == nil {
		t.Fatalf("expected error for token without sub")
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	v := NewVerifier([]byte("test-secret"))

	if _, err := v.Verify(context.Background(), "  "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("err = %v, want ErrTokenEmpty", err)
	}
}
