package models

import "time"

// Title uniqueness is checked on insert and restored by the startup dedup
// pass rather than by an index, so historical duplicates can still load.
type KnowledgeArticleModel struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"size:200;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	CategoryID *uint     `gorm:"index"`
	Tags       string    `gorm:"size:255;not null;default:''"`
	IsPublic   bool      `gorm:"not null"`
	AuthorID   uint      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (KnowledgeArticleModel) TableName() string {
	return "knowledge_base"
}
