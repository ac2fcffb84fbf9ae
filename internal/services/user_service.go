package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/repositories"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to users.
type UserService struct {
	repo     repositories.UserRepository
	log      *logger.Logger
	pipeline *validation.Pipeline[models.NewUserRequest]
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, log *logger.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log.With("component", "user"),
		pipeline: validation.NewPipeline(
			validation.Unique("login", "user.login.unique",
				func(r models.NewUserRequest) (string, bool) { return validation.String(r.Login) },
				repo.ExistsByEmail),
		),
	}
}

// Register validates the request, hashes the password and saves the user.
func (s *UserService) Register(ctx context.Context, req models.NewUserRequest) (*models.User, error) {
	req.Login = models.CanonicalEmail(req.Login)
	if err := check(ctx, s.pipeline, req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Login,
		Password: string(hashedPassword),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// FindByEmail resolves the user behind an authenticated principal.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotRegistered
		}
		return nil, err
	}
	return user, nil
}
