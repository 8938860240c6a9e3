package model

import "time"

type Post struct {
	ID       int64  `gorm:"primaryKey"`
	OwnerID  int64  `gorm:"not null;index"`
	Owner    *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Content  string `gorm:"not null"`
	ImageURL string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Post) TableName() string { return "posts" }

type Website struct {
	ID          int64  `gorm:"primaryKey"`
	OwnerID     int64  `gorm:"not null;index"`
	Owner       *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	URL         string `gorm:"column:url;not null"`
	Description string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Website) TableName() string { return "websites" }

type Material struct {
	ID          int64  `gorm:"primaryKey"`
	OwnerID     int64  `gorm:"not null;index"`
	Owner       *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Name        string `gorm:"not null"`
	Description string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Material) TableName() string { return "materials" }

// All перечисляет модели в порядке миграции.
func All() []any {
	return []any{
		&User{}, &Settings{}, &Listing{}, &Interest{}, &Follow{},
		&Message{}, &Post{}, &Website{}, &Material{},
	}
}
