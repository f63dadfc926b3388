package service

import (
	"context"
	"errors"
	"testing"

	"quizhub/internal/config"

	"github.com/rs/zerolog"
)

type fakeResolver struct {
	values map[string]string
	err    error
}

func (f fakeResolver) ResolveSecret(_ context.Context, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[name], nil
}

func TestAdminLogin(t *testing.T) {
	svc := NewAdminService(AdminCredentials{Username: "admin", Password: "admin123"}, zerolog.Nop())
	ctx := context.Background()

	if err := svc.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	for _, c := range [][2]string{{"admin", "wrong"}, {"root", "admin123"}, {"", ""}} {
		if err := svc.Login(ctx, c[0], c[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Login(%q, %q): expected ErrInvalidCredentials, got %v", c[0], c[1], err)
		}
	}
}

func TestLoadAdminCredentials(t *testing.T) {
	ctx := context.Background()
	secret := "projects/p/secrets/admin/versions/latest"

	plain := &config.Config{AdminUsername: "admin", AdminPassword: "pw"}
	creds, err := LoadAdminCredentials(ctx, plain, nil)
	if err != nil || creds.Password != "pw" {
		t.Fatalf("LoadAdminCredentials(plain) = %+v, %v", creds, err)
	}

	withSecret := &config.Config{AdminUsername: "admin", AdminPassword: "pw", AdminPasswordSecret: secret}
	creds, err = LoadAdminCredentials(ctx, withSecret, fakeResolver{values: map[string]string{secret: "from-secret"}})
	if err != nil || creds.Password != "from-secret" || creds.Username != "admin" {
		t.Fatalf("LoadAdminCredentials(secret) = %+v, %v", creds, err)
	}

	if _, err := LoadAdminCredentials(ctx, withSecret, nil); err == nil {
		t.Fatal("expected error when secret is configured without a resolver")
	}
	boom := errors.New("permission denied")
	if _, err := LoadAdminCredentials(ctx, withSecret, fakeResolver{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped resolver error, got %v", err)
	}
}
