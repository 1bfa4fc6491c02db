package models

// Role represents the account roles in the user directory.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Username prefixes encode the role by convention; the session restore
// path verifies them before trusting a persisted record.
const (
	TeacherUsernamePrefix = "01"
	StudentUsernamePrefix = "02"
)

// Prefix returns the username prefix expected for the role.
func (r Role) Prefix() string {
	if r == RoleTeacher {
		return TeacherUsernamePrefix
	}
	return StudentUsernamePrefix
}

// User is a directory account. Passwords are plaintext mock values;
// real credential handling is out of scope for this system.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// UserInfo is the public projection of a directory account.
type UserInfo struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// SessionRecord is the serialized session persisted to the key-value
// cache. It mirrors the directory entry at login time; restore always
// re-copies the live directory entry rather than trusting this record.
type SessionRecord struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}
