package service

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
)

type UserService struct {
	repo      repo.UserRepository
	passwords PasswordScheme
}

func NewUserService(r repo.UserRepository, passwords PasswordScheme) *UserService {
	if passwords == nil {
		passwords = PlainPasswords{}
	}
	return &UserService{repo: r, passwords: passwords}
}

// RegisterInput поля формы регистрации; обязательны только имя и пароль.
type RegisterInput struct {
	Username     string `validate:"required"`
	Password     string `validate:"required"`
	Contact      string
	Location     string
	ProfileImage string
	Website      string
	Bio          string
}

// Register создаёт пользователя вместе с настройками по умолчанию.
// Занятое имя: ErrUsernameTaken, без частично записанных данных.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := check(&in); err != nil {
		return nil, err
	}
	stored, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.CreateUser(ctx, &model.User{
		Username:     in.Username,
		Password:     stored,
		Contact:      in.Contact,
		Location:     in.Location,
		ProfileImage: in.ProfileImage,
		Website:      in.Website,
		Bio:          in.Bio,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login одинаково отвечает ErrInvalidCredentials на неизвестное имя и неверный пароль.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !s.passwords.Verify(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// List все пользователи по имени.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
