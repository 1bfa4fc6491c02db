package models

// TeacherProfile is biographical data keyed 1:1 with a directory user.
// Profiles exist independently of the directory; updating an absent
// profile is a no-op rather than an implicit create.
type TeacherProfile struct {
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

// StudentProfile is the student counterpart of TeacherProfile.
type StudentProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	YearLevel string `json:"year_level"`
	Program   string `json:"program"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// TeacherProfileUpdate carries a partial teacher profile mutation.
type TeacherProfileUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Department *string
	Bio        *string
	PhotoURL   *string
}

// StudentProfileUpdate carries a partial student profile mutation.
type StudentProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	YearLevel *string
	Program   *string
	Bio       *string
	PhotoURL  *string
}
