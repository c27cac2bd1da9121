package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookmarkd/bookmarkd-go/internal/model"
	"github.com/bookmarkd/bookmarkd-go/internal/repository"
	"github.com/bookmarkd/bookmarkd-go/internal/validate"
)

func seedUser(t *testing.T, store *fakeUserStore, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, PasswordHash: "$argon2id$stub"}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

func TestGetSelf(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	user := seedUser(t, store, "me@example.com")

	resp, err := svc.GetSelf(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetSelf() unexpected error: %v", err)
	}
	if resp.ID != user.ID || resp.Email != "me@example.com" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGetSelf_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.GetSelf(context.Background(), 99)
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEditSelf_PartialPatch(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	user := seedUser(t, store, "me@example.com")

	firstName := "Maria"
	resp, err := svc.EditSelf(context.Background(), user.ID, model.EditUserRequest{
		FirstName: &firstName,
	})
	if err != nil {
		t.Fatalf("EditSelf() unexpected error: %v", err)
	}

	if resp.FirstName != "Maria" {
		t.Errorf("FirstName = %q, want %q", resp.FirstName, "Maria")
	}
	// Untouched fields survive the patch.
	if resp.Email != "me@example.com" {
		t.Errorf("Email = %q, want unchanged %q", resp.Email, "me@example.com")
	}
}

func TestEditSelf_ChangeEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	user := seedUser(t, store, "old@example.com")

	email := "new@example.com"
	resp, err := svc.EditSelf(context.Background(), user.ID, model.EditUserRequest{Email: &email})
	if err != nil {
		t.Fatalf("EditSelf() unexpected error: %v", err)
	}
	if resp.Email != "new@example.com" {
		t.Errorf("Email = %q, want %q", resp.Email, "new@example.com")
	}
}

func TestEditSelf_EmailConflict(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	seedUser(t, store, "taken@example.com")
	user := seedUser(t, store, "me@example.com")

	email := "taken@example.com"
	_, err := svc.EditSelf(context.Background(), user.ID, model.EditUserRequest{Email: &email})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestEditSelf_MalformedEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	user := seedUser(t, store, "me@example.com")

	email := "not-an-email"
	_, err := svc.EditSelf(context.Background(), user.ID, model.EditUserRequest{Email: &email})

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
}
