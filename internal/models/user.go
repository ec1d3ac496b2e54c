package models

import "time"

type User struct {
	ID           ID     `json:"id" gorm:"primaryKey;size:36"`
	Username     string `json:"username" gorm:"not null;size:50"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
