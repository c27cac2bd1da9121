package service

import (
	"context"
	"errors"

	"github.com/bookmarkd/bookmarkd-go/internal/model"
	"github.com/bookmarkd/bookmarkd-go/internal/repository"
	"github.com/bookmarkd/bookmarkd-go/internal/validate"
)

// UserService reads and updates the caller's own profile. There is no path
// to any other user's record.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetSelf returns the caller's own record.
func (s *UserService) GetSelf(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}

// EditSelf applies a partial update to the caller's own record. Nil fields
// in the patch are left untouched.
func (s *UserService) EditSelf(ctx context.Context, userID int64, req model.EditUserRequest) (model.UserResponse, error) {
	if err := validate.EditUser(req); err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}
