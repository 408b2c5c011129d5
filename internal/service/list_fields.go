package service

import (
	"github.com/noah-isme/hmhy-admin-api/internal/models"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

// AdminListFields are the sortable, filterable and searchable admin columns.
func AdminListFields() *listview.Fields[models.Admin] {
	return listview.NewFields[models.Admin]().
		Searchable("username", func(a models.Admin) listview.Value { return listview.Text(a.Username) }).
		Searchable("phone_number", func(a models.Admin) listview.Value { return listview.OptionalText(a.PhoneNumber) }).
		Searchable("role", func(a models.Admin) listview.Value { return listview.Text(string(a.Role)) }).
		Field("created_at", func(a models.Admin) listview.Value { return listview.Time(a.CreatedAt) }).
		Field("updated_at", func(a models.Admin) listview.Value { return listview.Time(a.UpdatedAt) })
}

// TeacherListFields describe the active teachers screen.
func TeacherListFields() *listview.Fields[models.Teacher] {
	return listview.NewFields[models.Teacher]().
		Searchable("full_name", func(t models.Teacher) listview.Value { return listview.Text(t.FullName) }).
		Searchable("email", func(t models.Teacher) listview.Value { return listview.Text(t.Email) }).
		Searchable("phone_number", func(t models.Teacher) listview.Value { return listview.OptionalText(t.PhoneNumber) }).
		Searchable("specification", func(t models.Teacher) listview.Value { return listview.OptionalText(t.Specification) }).
		Field("level", func(t models.Teacher) listview.Value { return listview.OptionalText(t.Level) }).
		Field("rating", func(t models.Teacher) listview.Value { return listview.Number(t.Rating) }).
		Field("hour_price", func(t models.Teacher) listview.Value { return listview.Decimal(t.HourPrice) }).
		Field("experience", func(t models.Teacher) listview.Value { return listview.Int(t.Experience) }).
		Field("created_at", func(t models.Teacher) listview.Value { return listview.Time(t.CreatedAt) })
}

// DeletedTeacherListFields describe the soft-deleted teachers screen.
func DeletedTeacherListFields() *listview.Fields[models.Teacher] {
	return listview.NewFields[models.Teacher]().
		Searchable("full_name", func(t models.Teacher) listview.Value { return listview.Text(t.FullName) }).
		Searchable("email", func(t models.Teacher) listview.Value { return listview.Text(t.Email) }).
		Searchable("phone_number", func(t models.Teacher) listview.Value { return listview.OptionalText(t.PhoneNumber) }).
		Field("deleted_at", func(t models.Teacher) listview.Value { return listview.OptionalTime(t.DeletedAt) })
}

// StudentListFields describe the students screen. status is active or blocked.
func StudentListFields() *listview.Fields[models.Student] {
	return listview.NewFields[models.Student]().
		Searchable("first_name", func(s models.Student) listview.Value { return listview.Text(s.FirstName) }).
		Searchable("last_name", func(s models.Student) listview.Value { return listview.Text(s.LastName) }).
		Searchable("phone_number", func(s models.Student) listview.Value { return listview.OptionalText(s.PhoneNumber) }).
		Searchable("tg_username", func(s models.Student) listview.Value { return listview.OptionalText(s.TgUsername) }).
		Field("status", func(s models.Student) listview.Value { return listview.Text(s.Status()) }).
		Field("created_at", func(s models.Student) listview.Value { return listview.Time(s.CreatedAt) })
}

// LessonListFields describe a teacher's lessons screen.
func LessonListFields() *listview.Fields[models.Lesson] {
	return listview.NewFields[models.Lesson]().
		Searchable("name", func(l models.Lesson) listview.Value { return listview.Text(l.Name) }).
		Searchable("student_first_name", func(l models.Lesson) listview.Value { return listview.OptionalText(l.StudentFirstName) }).
		Searchable("student_last_name", func(l models.Lesson) listview.Value { return listview.OptionalText(l.StudentLastName) }).
		Field("status", func(l models.Lesson) listview.Value { return listview.Text(string(l.Status)) }).
		Field("start_time", func(l models.Lesson) listview.Value { return listview.Time(l.StartTime) }).
		Field("end_time", func(l models.Lesson) listview.Value { return listview.Time(l.EndTime) }).
		Field("price", func(l models.Lesson) listview.Value { return listview.Decimal(l.Price) })
}

// TransactionListFields describe the payments screen.
func TransactionListFields() *listview.Fields[models.Transaction] {
	return listview.NewFields[models.Transaction]().
		Searchable("student_name", func(t models.Transaction) listview.Value { return listview.OptionalText(t.StudentName) }).
		Searchable("teacher_name", func(t models.Transaction) listview.Value { return listview.OptionalText(t.TeacherName) }).
		Field("status", func(t models.Transaction) listview.Value { return listview.Text(string(t.Status)) }).
		Field("provider", func(t models.Transaction) listview.Value { return listview.Text(t.Provider) }).
		Field("date", func(t models.Transaction) listview.Value { return listview.Time(t.PerformedAt) }).
		Field("amount", func(t models.Transaction) listview.Value { return listview.Decimal(t.Amount) })
}
