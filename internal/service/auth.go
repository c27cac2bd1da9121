package service

import (
	"context"
	"errors"
	"time"

	"github.com/bookmarkd/bookmarkd-go/internal/crypto"
	"github.com/bookmarkd/bookmarkd-go/internal/model"
	"github.com/bookmarkd/bookmarkd-go/internal/repository"
	"github.com/bookmarkd/bookmarkd-go/internal/validate"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles signup and signin.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates a new user account and returns its public fields. The
// password is stored only as an Argon2id hash.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.UserResponse, error) {
	if err := validate.Signup(req); err != nil {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}

// Signin verifies credentials and issues a session token. Unknown email and
// wrong password collapse into the same ErrInvalidCredentials so a caller
// cannot probe which accounts exist.
func (s *AuthService) Signin(ctx context.Context, req model.SigninRequest) (model.TokenResponse, error) {
	if err := validate.Signin(req); err != nil {
		return model.TokenResponse{}, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{AccessToken: token}, nil
}
