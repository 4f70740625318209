package user

import (
	"context"
	"errors"
	"testing"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier([]string{"dev-token:user-1", " other : user-2 ", "broken", ":user-3", "token-4:"})
	if v.Len() != 2 {
		t.Fatalf("expected 2 tokens, got %d", v.Len())
	}

	principal, err := v.VerifyAccessToken(context.Background(), "dev-token")
	if err != nil {
		t.Fatalf("verify dev-token: %v", err)
	}
	if principal.UserID != "user-1" {
		t.Fatalf("unexpected user id %q", principal.UserID)
	}

	principal, err = v.VerifyAccessToken(context.Background(), "other")
	if err != nil || principal.UserID != "user-2" {
		t.Fatalf("expected trimmed pair to resolve, got %+v %v", principal, err)
	}

	if _, err := v.VerifyAccessToken(context.Background(), "nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
