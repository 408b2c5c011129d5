package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Teacher is a tutor account. DeletedAt marks a soft-deleted teacher.
type Teacher struct {
	ID            string          `db:"id" json:"id"`
	Email         string          `db:"email" json:"email"`
	PasswordHash  string          `db:"password_hash" json:"-"`
	FullName      string          `db:"full_name" json:"full_name"`
	PhoneNumber   *string         `db:"phone_number" json:"phone_number,omitempty"`
	Description   *string         `db:"description" json:"description,omitempty"`
	Experience    int             `db:"experience" json:"experience"`
	HourPrice     decimal.Decimal `db:"hour_price" json:"hour_price"`
	Level         *string         `db:"level" json:"level,omitempty"`
	PortfolioLink *string         `db:"portfolio_link" json:"portfolio_link,omitempty"`
	Specification *string         `db:"specification" json:"specification,omitempty"`
	Rating        float64         `db:"rating" json:"rating"`
	ImageURL      *string         `db:"image_url" json:"image_url,omitempty"`
	CardNumber    *string         `db:"card_number" json:"card_number,omitempty"`
	EmailVerified bool            `db:"email_verified" json:"email_verified"`
	DeletedAt     *time.Time      `db:"deleted_at" json:"deleted_at,omitempty"`
	DeletedBy     *string         `db:"deleted_by" json:"deleted_by,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Deleted reports whether the teacher is soft-deleted.
func (t Teacher) Deleted() bool {
	return t.DeletedAt != nil
}

// UpdateTeacherRequest is the admin-side teacher edit. Nil fields are left as-is.
type UpdateTeacherRequest struct {
	FullName      *string          `json:"full_name" validate:"omitempty,min=2,max=120"`
	PhoneNumber   *string          `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	Experience    *int             `json:"experience" validate:"omitempty,min=0,max=80"`
	HourPrice     *decimal.Decimal `json:"hour_price"`
	Level         *string          `json:"level" validate:"omitempty,max=32"`
	PortfolioLink *string          `json:"portfolio_link" validate:"omitempty,url"`
	Specification *string          `json:"specification" validate:"omitempty,max=120"`
}

// UpdateTeacherProfileRequest is the teacher's own profile edit.
type UpdateTeacherProfileRequest struct {
	UpdateTeacherRequest
	ImageURL   *string `json:"image_url" validate:"omitempty,url"`
	CardNumber *string `json:"card_number" validate:"omitempty,numeric,min=16,max=19"`
}
