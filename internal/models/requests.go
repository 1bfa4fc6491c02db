package models

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the authenticated account.
type LoginResponse struct {
	User UserInfo `json:"user"`
	Role Role     `json:"role"`
}

// CourseCreateRequest carries a new catalog entry.
type CourseCreateRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Teacher     string `json:"teacher" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"required"`
}

// SectionCreateRequest carries a new section for a course.
type SectionCreateRequest struct {
	Name             string   `json:"name" validate:"required"`
	Students         int      `json:"students" validate:"gte=0"`
	StudentUsernames []string `json:"student_usernames"`
}

// SectionUpdateRequest carries a partial section mutation; absent
// fields are left untouched.
type SectionUpdateRequest struct {
	Name             *string   `json:"name"`
	Students         *int      `json:"students" validate:"omitempty,gte=0"`
	StudentUsernames *[]string `json:"student_usernames"`
}

// ScheduleRequest sets the meeting slot for a course-section pair.
type ScheduleRequest struct {
	Day  string `json:"day" validate:"required"`
	Time string `json:"time" validate:"required"`
	Room string `json:"room" validate:"required"`
}

// CalendarEventRequest carries a new personal calendar entry.
type CalendarEventRequest struct {
	Title      string    `json:"title" validate:"required"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	Type       EventType `json:"type" validate:"required,oneof=quiz holiday other"`
	Time       string    `json:"time"`
	IsDeadline bool      `json:"is_deadline"`
}

// ProfileUpdateRequest carries a partial profile mutation. The role of
// the active session decides which fields apply; the rest are ignored.
type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`

	// teacher-only
	Department *string `json:"department"`

	// student-only
	YearLevel *string `json:"year_level"`
	Program   *string `json:"program"`
}

// PhotoRequest replaces the profile photo URL.
type PhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}
