package service

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type MessageService struct {
	messages repo.MessageRepository
	users    repo.UserRepository
	logger   *zap.SugaredLogger

	// enforceAllow включает проверку флага allow_messages получателя.
	enforceAllow bool
}

func NewMessageService(messages repo.MessageRepository, users repo.UserRepository, logger *zap.SugaredLogger, enforceAllow bool) *MessageService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &MessageService{messages: messages, users: users, logger: logger, enforceAllow: enforceAllow}
}

// Send добавляет сообщение. Пустой текст: ErrEmptyContent, неизвестный получатель: ErrNotFound.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID int64, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", receiverID, ErrNotFound)
		}
		return nil, err
	}

	allowed, err := s.acceptsMessages(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		if s.enforceAllow {
			return nil, ErrMessagesDisabled
		}
		s.logger.Warnw("message sent to user with messages disabled",
			"sender_id", senderID, "receiver_id", receiverID)
	}

	m := &model.Message{SenderID: senderID, ReceiverID: receiverID, Content: content}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return m, nil
}

func (s *MessageService) acceptsMessages(ctx context.Context, userID int64) (bool, error) {
	st, err := s.users.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.DefaultSettings(userID).AllowMessages, nil
		}
		return false, err
	}
	return st.AllowMessages, nil
}

// Conversations собеседники пользователя по имени.
func (s *MessageService) Conversations(ctx context.Context, userID int64) ([]model.User, error) {
	ids, err := s.messages.CounterpartIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.ListByIDs(ctx, ids)
}

// Thread переписка двух пользователей в хронологическом порядке.
func (s *MessageService) Thread(ctx context.Context, userID, otherID int64) ([]model.Message, error) {
	return s.messages.Thread(ctx, userID, otherID)
}
