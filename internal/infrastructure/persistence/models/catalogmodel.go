package models

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:50;not null"`
	Description string `gorm:"size:255;not null;default:''"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type PriorityModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;size:20;not null"`
	Level int    `gorm:"uniqueIndex;not null"`
	Color string `gorm:"size:20;not null;default:''"`
}

func (PriorityModel) TableName() string {
	return "priorities"
}

type StatusModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:30;not null"`
	Description string `gorm:"size:255;not null;default:''"`
}

func (StatusModel) TableName() string {
	return "statuses"
}
