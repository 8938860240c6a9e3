package repo

import (
	"IcePlant/internal/model"
	"context"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, m *model.Message) error
	// CounterpartIDs различные собеседники пользователя (он отправитель или получатель).
	CounterpartIDs(ctx context.Context, userID int64) ([]int64, error)
	// Thread переписка пары в порядке возрастания id.
	Thread(ctx context.Context, userID, otherID int64) ([]model.Message, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, m *model.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepo) CounterpartIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS other_id
		FROM messages
		WHERE sender_id = ? OR receiver_id = ?`,
		userID, userID, userID,
	).Scan(&ids).Error
	return ids, err
}

func (r *messageRepo) Thread(ctx context.Context, userID, otherID int64) ([]model.Message, error) {
	var out []model.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}
