package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LessonStatus is the booking state of a lesson slot.
type LessonStatus string

const (
	LessonAvailable LessonStatus = "AVAILABLE"
	LessonBooked    LessonStatus = "BOOKED"
	LessonCompleted LessonStatus = "COMPLETED"
	LessonCancelled LessonStatus = "CANCELLED"
)

// LessonStatuses lists every status in display order.
var LessonStatuses = []LessonStatus{LessonAvailable, LessonBooked, LessonCompleted, LessonCancelled}

// Lesson is a teacher's time slot, optionally booked by a student.
type Lesson struct {
	ID               string          `db:"id" json:"id"`
	TeacherID        string          `db:"teacher_id" json:"teacher_id"`
	Name             string          `db:"name" json:"name"`
	StudentID        *string         `db:"student_id" json:"student_id,omitempty"`
	StudentFirstName *string         `db:"student_first_name" json:"student_first_name,omitempty"`
	StudentLastName  *string         `db:"student_last_name" json:"student_last_name,omitempty"`
	StartTime        time.Time       `db:"start_time" json:"start_time"`
	EndTime          time.Time       `db:"end_time" json:"end_time"`
	Price            decimal.Decimal `db:"price" json:"price"`
	Status           LessonStatus    `db:"status" json:"status"`
	GoogleMeetURL    *string         `db:"google_meet_url" json:"google_meet_url,omitempty"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}
