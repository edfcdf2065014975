package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/magazinehub/internal/app/system/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc, err := token.NewService(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	signed, err := svc.Issue("64f0c0ffee0ddba11ca75e77")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != "64f0c0ffee0ddba11ca75e77" {
		t.Errorf("subject: got %q", userID)
	}
}

func TestNewService_RejectsShortSecret(t *testing.T) {
	if _, err := token.NewService("short", time.Hour); err == nil {
		t.Error("expected error for short secret")
	}
}

func TestVerify_Expired(t *testing.T) {
	svc, err := token.NewService(testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	signed, err := svc.Issue("64f0c0ffee0ddba11ca75e77")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, token.ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuing, _ := token.NewService(testSecret, time.Hour)
	verifying, _ := token.NewService("ffffffffffffffffffffffffffffffff", time.Hour)

	signed, err := issuing.Issue("64f0c0ffee0ddba11ca75e77")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifying.Verify(signed); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc, _ := token.NewService(testSecret, time.Hour)
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
