package services

import (
	"context"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/pkg/logger"
)

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Get(ctx context.Context, uid string) (*models.User, error)
}

type userService struct {
	store userStore
}

func NewUserService(store userStore) *userService {
	return &userService{store: store}
}

func (s *userService) CreateUser(ctx context.Context, uid string, req dto.CreateUserRequest) (*models.User, error) {
	log := logger.FromContext(ctx)

	user := &models.User{
		UID:       uid,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user created", "first_name", req.FirstName, "last_name", req.LastName)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	return s.store.Get(ctx, uid)
}

func (s *userService) UpdateUser(ctx context.Context, uid string, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
