package service

import (
	"IcePlant/internal/repo"
	"context"
	"errors"
	"fmt"
)

type FollowService struct {
	follows repo.FollowRepository
	users   repo.UserRepository
}

func NewFollowService(follows repo.FollowRepository, users repo.UserRepository) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// Toggle подписывает или отписывает actor от target. Подписка на себя: ErrSelfFollow.
func (s *FollowService) Toggle(ctx context.Context, actorID, targetID int64) (bool, error) {
	if actorID == targetID {
		return false, ErrSelfFollow
	}
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, fmt.Errorf("user %d: %w", targetID, ErrNotFound)
		}
		return false, err
	}
	return s.follows.Toggle(ctx, actorID, targetID)
}

// Counts число подписчиков и подписок, считается по таблице при каждом вызове.
func (s *FollowService) Counts(ctx context.Context, userID int64) (followers, following int64, err error) {
	if followers, err = s.follows.CountFollowers(ctx, userID); err != nil {
		return 0, 0, err
	}
	if following, err = s.follows.CountFollowing(ctx, userID); err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error) {
	if actorID == 0 || actorID == targetID {
		return false, nil
	}
	return s.follows.Exists(ctx, actorID, targetID)
}
