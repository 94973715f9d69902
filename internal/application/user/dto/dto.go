package dto

import (
	"time"

	"helpdesk/internal/domain/user"
)

type UserDTO struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Department  string    `json:"department,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Stats       *StatsDTO `json:"stats,omitempty"`
}

type StatsDTO struct {
	TicketsCreated  int64 `json:"tickets_created"`
	TicketsAssigned int64 `json:"tickets_assigned"`
	TimeEntries     int64 `json:"time_entries"`
}

// StaffDTO is the assignee picker entry.
type StaffDTO struct {
	ID          uint   `json:"id"`
	FullName    string `json:"full_name"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email(),
		FullName:    u.FullName(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		Department:  u.Department(),
		CreatedAt:   u.CreatedAt(),
	}
}

// ToUserDTOWithStats attaches stats. Assigned counts only apply to staff.
func ToUserDTOWithStats(u *user.User, s user.Stats) *UserDTO {
	result := ToUserDTO(u)
	if result == nil {
		return nil
	}
	result.Stats = &StatsDTO{
		TicketsCreated: s.TicketsCreated,
		TimeEntries:    s.TimeEntries,
	}
	if u.IsStaff() {
		result.Stats.TicketsAssigned = s.TicketsAssigned
	}
	return result
}

func ToStaffDTO(u *user.User) StaffDTO {
	return StaffDTO{
		ID:          u.ID(),
		FullName:    u.FullName(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
	}
}
