package service

import (
	"context"
	"errors"
	"testing"

	"quizhub/internal/repository"
	"quizhub/internal/repository/repotest"

	"github.com/rs/zerolog"
)

func TestRegisterUser(t *testing.T) {
	store := repotest.NewStore()
	svc := NewUserService(store.Users(), zerolog.Nop())

	u, err := svc.Register(context.Background(), "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.ID == "" || u.JoinedAt.IsZero() {
		t.Fatalf("expected id and join time to be set: %+v", u)
	}
	if u.CompletedQuizzes == nil || len(u.CompletedQuizzes) != 0 {
		t.Fatalf("expected empty completed quizzes, got %v", u.CompletedQuizzes)
	}

	if _, err := svc.Register(context.Background(), "Ada Again", "ada@example.com"); !errors.Is(err, repository.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if store.UserCount() != 1 {
		t.Fatalf("expected 1 stored user, got %d", store.UserCount())
	}
}
