package auth_test

import (
	"testing"
	"time"

	"github.com/diefthyntis/Savasana/internal/auth"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestTokenService_IssueAndValidate(t *testing.T) {
	tokens := auth.NewTokenService([]byte(testSecret), time.Hour)

	token, err := tokens.Issue("yoga@studio.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !tokens.Validate(token) {
		t.Fatal("expected freshly issued token to validate")
	}

	subject, err := tokens.Subject(token)
	if err != nil {
		t.Fatalf("Subject: %v", err)
	}
	if subject != "yoga@studio.com" {
		t.Fatalf("expected subject yoga@studio.com, got %s", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	tokens := auth.NewTokenService([]byte(testSecret), -time.Minute)

	token, err := tokens.Issue("yoga@studio.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tokens.Validate(token) {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestTokenService_EmptyString(t *testing.T) {
	tokens := auth.NewTokenService([]byte(testSecret), time.Hour)
	if tokens.Validate("") {
		t.Fatal("expected empty token to fail validation")
	}
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := auth.NewTokenService([]byte(testSecret), time.Hour)
	if tokens.Validate("not-a-valid-jwt") {
		t.Fatal("expected malformed token to fail validation")
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenService([]byte(testSecret), time.Hour)
	verifier := auth.NewTokenService([]byte("a-different-secret"), time.Hour)

	token, err := issuer.Issue("yoga@studio.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if verifier.Validate(token) {
		t.Fatal("expected token signed with another secret to fail validation")
	}
}

func TestTokenService_Tampered(t *testing.T) {
	tokens := auth.NewTokenService([]byte(testSecret), time.Hour)

	token, err := tokens.Issue("yoga@studio.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token[:len(token)-5] + "XXXXX"
	if tokens.Validate(tampered) {
		t.Fatal("expected tampered token to fail validation")
	}
}
