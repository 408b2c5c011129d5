package models

import "time"

// Student is a learner registered through the Telegram bot.
type Student struct {
	ID            string     `db:"id" json:"id"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	PhoneNumber   *string    `db:"phone_number" json:"phone_number,omitempty"`
	TgID          *string    `db:"tg_id" json:"tg_id,omitempty"`
	TgUsername    *string    `db:"tg_username" json:"tg_username,omitempty"`
	IsBlocked     bool       `db:"is_blocked" json:"is_blocked"`
	BlockedAt     *time.Time `db:"blocked_at" json:"blocked_at,omitempty"`
	BlockedReason *string    `db:"blocked_reason" json:"blocked_reason,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// Status is "blocked" or "active".
func (s Student) Status() string {
	if s.IsBlocked {
		return StudentStatusBlocked
	}
	return StudentStatusActive
}

const (
	StudentStatusActive  = "active"
	StudentStatusBlocked = "blocked"
)

// StudentStats counts students by block state.
type StudentStats struct {
	Total   int `db:"total" json:"total"`
	Active  int `db:"active" json:"active"`
	Blocked int `db:"blocked" json:"blocked"`
}

// UpdateStudentRequest edits a student's contact details.
type UpdateStudentRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=80"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=7,max=20"`
}

// BlockStudentRequest optionally records why a student was blocked.
type BlockStudentRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}
