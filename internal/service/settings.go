package service

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"context"
	"errors"
)

type SettingsService struct {
	repo repo.UserRepository
}

func NewSettingsService(r repo.UserRepository) *SettingsService {
	return &SettingsService{repo: r}
}

// Flags значения чекбоксов формы настроек.
type Flags struct {
	ShowContact   bool
	AllowMessages bool
	DarkTheme     bool
}

// Get настройки пользователя; если строки нет: значения по умолчанию (true, true, false).
func (s *SettingsService) Get(ctx context.Context, userID int64) (model.Settings, error) {
	st, err := s.repo.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.DefaultSettings(userID), nil
		}
		return model.Settings{}, err
	}
	return *st, nil
}

// Update безусловно перезаписывает все три флага.
func (s *SettingsService) Update(ctx context.Context, userID int64, f Flags) (model.Settings, error) {
	st := model.Settings{
		UserID:        userID,
		ShowContact:   f.ShowContact,
		AllowMessages: f.AllowMessages,
		DarkTheme:     f.DarkTheme,
	}
	if err := s.repo.SaveSettings(ctx, &st); err != nil {
		return model.Settings{}, err
	}
	return st, nil
}
