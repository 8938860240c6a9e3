package model

import "time"

// Listing: предложение льда/мощностей ("ice can"), привязанное к локации.
type Listing struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Location    string `gorm:"not null"`
	Capacity    string
	Quote       string
	ImageURL    string

	OwnerID int64 `gorm:"not null;index"`
	Owner   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Listing) TableName() string { return "icecans" }

// Interest: закладка пользователя на объявление.
type Interest struct {
	UserID    int64 `gorm:"primaryKey;autoIncrement:false"`
	ListingID int64 `gorm:"primaryKey;autoIncrement:false;index"`

	User    *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Listing *Listing `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Interest) TableName() string { return "interests" }
