package model

import "time"

// Follow: направленная подписка follower -> followed.
type Follow struct {
	FollowerID int64 `gorm:"primaryKey;autoIncrement:false"`
	FollowedID int64 `gorm:"primaryKey;autoIncrement:false;index"`

	Follower *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Followed *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Follow) TableName() string { return "follows" }

// Message: сообщение между двумя пользователями. Только добавление, порядок по id.
type Message struct {
	ID         int64  `gorm:"primaryKey"`
	SenderID   int64  `gorm:"not null;index"`
	ReceiverID int64  `gorm:"not null;index"`
	Content    string `gorm:"not null"`

	Sender   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Receiver *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string { return "messages" }
