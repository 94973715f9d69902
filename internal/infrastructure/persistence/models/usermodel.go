package models

import "time"

type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Email        string    `gorm:"uniqueIndex;size:100;not null"`
	FullName     string    `gorm:"size:100;not null"`
	Role         string    `gorm:"size:20;not null;index"`
	Department   string    `gorm:"size:100;not null;default:''"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
}

func (UserModel) TableName() string {
	return "users"
}
