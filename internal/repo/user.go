package repo

import (
	"IcePlant/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository доступ к пользователям и их настройкам.
type UserRepository interface {
	// CreateUser создаёт пользователя и строку настроек по умолчанию в одной транзакции.
	// При занятом имени возвращает ErrDuplicate, ничего не записав.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	Search(ctx context.Context, q string) ([]model.User, error)

	GetSettings(ctx context.Context, userID int64) (*model.Settings, error)
	SaveSettings(ctx context.Context, s *model.Settings) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		settings := model.DefaultSettings(user.ID)
		return tx.Create(&settings).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	var users []model.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("username ASC").Find(&users).Error
	return users, err
}

// Search ищет по имени, локации и дате регистрации, новые сверху.
func (r *userRepo) Search(ctx context.Context, q string) ([]model.User, error) {
	cond, args := likeAny(likePattern(q), "username", "location", "CAST(created_at AS TEXT)")
	var users []model.User
	err := r.db.WithContext(ctx).Where(cond, args...).Order("id DESC").Find(&users).Error
	return users, err
}

// GetSettings возвращает ErrNotFound, если строки нет (например, у старых аккаунтов).
func (r *userRepo) GetSettings(ctx context.Context, userID int64) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// SaveSettings перезаписывает все три флага (upsert по user_id).
func (r *userRepo) SaveSettings(ctx context.Context, s *model.Settings) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"show_contact", "allow_messages", "dark_theme"}),
	}).Create(s).Error
}
