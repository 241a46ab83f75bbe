package token

import (
	"testing"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	svc, err := NewService("test-secret", "ong-api")
	if err != nil {
		t.Fatal(err)
	}

	signed, err := svc.Generate(42, domain.RoleAdministrator, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	subject, err := svc.Parse(signed)
	if err != nil {
		t.Fatal(err)
	}
	if subject.UserID != 42 || subject.Role != domain.RoleAdministrator {
		t.Errorf("subject = %+v, want uid 42 Administrator", subject)
	}
	if !subject.IsAdministrator() {
		t.Error("IsAdministrator() = false")
	}
}

func TestParseRejections(t *testing.T) {
	svc, err := NewService("test-secret", "ong-api")
	if err != nil {
		t.Fatal(err)
	}
	other, err := NewService("other-secret", "ong-api")
	if err != nil {
		t.Fatal(err)
	}

	valid, err := svc.Generate(1, domain.RoleUser, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := svc.Generate(1, domain.RoleUser, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
		svc   *Service
	}{
		{"garbage", "not.a.token", svc},
		{"wrong secret", valid, other},
		{"expired", expired, svc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.svc.Parse(tt.token); !domain.IsUnauthorized(err) {
				t.Errorf("Parse() err = %v, want unauthorized", err)
			}
		})
	}
}

func TestNewServiceRequiresSecret(t *testing.T) {
	if _, err := NewService("", "ong-api"); err == nil {
		t.Error("NewService accepted an empty secret")
	}
}
