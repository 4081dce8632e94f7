package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	manager, err := NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	token, err := manager.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id = %d, want 42", userID)
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer, _ := NewTokenManager("secret-one")
	verifier, _ := NewTokenManager("secret-two")

	token, err := issuer.Generate(7, "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification to fail under a different secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager, _ := NewTokenManager("test-secret")

	if _, err := manager.Verify("not-a-token"); err == nil {
		t.Fatal("expected verification of garbage to fail")
	}
}

func TestEmptySecretRejected(t *testing.T) {
	if _, err := NewTokenManager(""); err == nil {
		t.Fatal("expected empty secret to be rejected")
	}
}
