package model

import "time"

// User: зарегистрированный участник сети.
// Пароль хранится в том виде, в каком его выдала PasswordScheme (по умолчанию: как есть).
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"not null;uniqueIndex"`
	Password     string `gorm:"not null"`
	Contact      string
	Bio          string
	Location     string
	ProfileImage string
	Website      string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Settings: персональные флаги пользователя, ровно одна строка на пользователя.
type Settings struct {
	UserID int64 `gorm:"primaryKey;autoIncrement:false"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	ShowContact   bool `gorm:"not null"`
	AllowMessages bool `gorm:"not null"`
	DarkTheme     bool `gorm:"not null"`
}

func (Settings) TableName() string { return "settings" }

// DefaultSettings значения для только что зарегистрированного пользователя.
func DefaultSettings(userID int64) Settings {
	return Settings{UserID: userID, ShowContact: true, AllowMessages: true, DarkTheme: false}
}
