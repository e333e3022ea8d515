package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)

	token, err := iss.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty string")
	}

	id, err := iss.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if id != "alice" {
		t.Errorf("Verify() identity = %q, want %q", id, "alice")
	}
}

func TestIssueEmptyIdentity(t *testing.T) {
	if _, err := NewIssuer("s", time.Hour).Issue(""); err == nil {
		t.Error("Issue() expected error for empty identity")
	}
}

func TestVerifyNoExpiry(t *testing.T) {
	iss := NewIssuer("test-secret", 0)
	token, err := iss.Issue("bob")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	iss.now = func() time.Time { return time.Now().Add(24 * 365 * time.Hour) }
	if _, err := iss.Verify(token); err != nil {
		t.Errorf("Verify() unexpected error: %v", err)
	}
}

func TestVerifyInvalid(t *testing.T) {
	if _, err := NewIssuer("test-secret", time.Hour).Verify("not-a-valid-token"); err != ErrInvalidToken {
		t.Errorf("Verify() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewIssuer("correct-secret", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	if _, err := NewIssuer("wrong-secret", time.Hour).Verify(token); err == nil {
		t.Error("Verify() expected error for wrong secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	iss := NewIssuer("test-secret", time.Minute)
	token, err := iss.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	iss.now = func() time.Time { return time.Now().Add(time.Hour) }
	if _, err := iss.Verify(token); err == nil {
		t.Error("Verify() expected error for expired token")
	}
}

func TestVerifyForeignClaims(t *testing.T) {
	secret := "test-secret"
	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
	}{
		{
			name: "wrong issuer",
			claims: jwt.RegisteredClaims{
				Issuer: "someone-else", Subject: "alice", Audience: jwt.ClaimStrings{audience},
			},
		},
		{
			name: "wrong audience",
			claims: jwt.RegisteredClaims{
				Issuer: issuer, Subject: "alice", Audience: jwt.ClaimStrings{"other-api"},
			},
		},
		{
			name: "missing subject",
			claims: jwt.RegisteredClaims{
				Issuer: issuer, Audience: jwt.ClaimStrings{audience},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(secret))
			if err != nil {
				t.Fatalf("SignedString() unexpected error: %v", err)
			}
			if _, err := NewIssuer(secret, time.Hour).Verify(token); err == nil {
				t.Errorf("Verify() expected error for %s", tt.name)
			}
		})
	}
}
