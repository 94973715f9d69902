package models

import "time"

// Timestamps are written by the domain, so gorm's auto time tracking is off.
type TicketModel struct {
	ID               uint       `gorm:"primaryKey"`
	TicketNumber     string     `gorm:"column:ticket_number;uniqueIndex;size:30;not null"`
	Title            string     `gorm:"size:200;not null"`
	Description      string     `gorm:"type:text;not null"`
	StatusID         uint       `gorm:"not null;index"`
	PriorityID       uint       `gorm:"not null;index"`
	CategoryID       uint       `gorm:"not null;index"`
	RequesterID      uint       `gorm:"not null;index"`
	AssigneeID       *uint      `gorm:"index"`
	CreatedAt        time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt        time.Time  `gorm:"not null;autoUpdateTime:false"`
	ResolvedAt       *time.Time `gorm:"column:resolved_at"`
	SLAResponseDue   *time.Time `gorm:"column:sla_response_due"`
	SLAResolutionDue *time.Time `gorm:"column:sla_resolution_due"`
	FirstResponseAt  *time.Time `gorm:"column:first_response_at"`
	EscalatedAt      *time.Time `gorm:"column:escalated_at"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint      `gorm:"primaryKey"`
	TicketID   uint      `gorm:"not null;index"`
	UserID     uint      `gorm:"not null;index"`
	Content    string    `gorm:"type:text;not null"`
	IsInternal bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
}

func (CommentModel) TableName() string {
	return "comments"
}

type TimeEntryModel struct {
	ID           uint      `gorm:"primaryKey"`
	TicketID     uint      `gorm:"not null;index"`
	UserID       uint      `gorm:"not null;index"`
	Description  string    `gorm:"type:text"`
	MinutesSpent int       `gorm:"column:minutes_spent;not null"`
	CreatedAt    time.Time `gorm:"not null;index;autoCreateTime:false"`
}

func (TimeEntryModel) TableName() string {
	return "time_entries"
}
