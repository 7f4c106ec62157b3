package services

import (
	"context"

	"order-service/models"
	"order-service/utils"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	encodedPIN, err := utils.HashPIN(req.PIN)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email: req.Email,
		PIN:   encodedPIN,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
