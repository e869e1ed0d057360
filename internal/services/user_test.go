package services

import (
	"context"
	"errors"
	"testing"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/pkg/helpers"
)

type fakeUserStore struct {
	users   map[string]*models.User
	err     error
	created *models.User
	updated *models.User
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.created = user
	return f.err
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	f.updated = user
	return f.err
}

func (f *fakeUserStore) Get(_ context.Context, uid string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if user, ok := f.users[uid]; ok {
		return user, nil
	}
	return nil, errs.NewNotFoundError("user not found")
}

func TestCreateUser(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewUserService(store)

	got, err := svc.CreateUser(helpers.TestCtx(), "uid1", dto.CreateUserRequest{
		Email:     "jo@example.com",
		FirstName: "Jo",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if got.UID != "uid1" {
		t.Fatalf("UID mismatch: got %q", got.UID)
	}
	if store.created != got {
		t.Fatal("expected the created user to be persisted")
	}
}

func TestCreateUser_AlreadyExists(t *testing.T) {
	store := &fakeUserStore{err: errs.NewAlreadyExistsError("user already exists")}
	svc := NewUserService(store)

	_, err := svc.CreateUser(helpers.TestCtx(), "uid1", dto.CreateUserRequest{Email: "jo@example.com"})
	var aerr *errs.AlreadyExistsError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	store := &fakeUserStore{
		users: map[string]*models.User{
			"uid1": {UID: "uid1", Email: "jo@example.com", FirstName: "Jo"},
		},
	}
	svc := NewUserService(store)

	got, err := svc.UpdateUser(helpers.TestCtx(), "uid1", dto.UpdateUserRequest{FirstName: "Joanna", LastName: "Smith"})
	if err != nil {
		t.Fatalf("UpdateUser error: %v", err)
	}
	if got.FirstName != "Joanna" || got.LastName != "Smith" {
		t.Fatalf("name mismatch: %+v", got)
	}
	if got.Email != "jo@example.com" {
		t.Fatalf("email should be preserved: got %q", got.Email)
	}
}
