package models

// Section is a roster grouping. Students is an advisory headcount kept
// alongside the actual member list; the two may drift and are not
// reconciled automatically.
type Section struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Students         int      `json:"students"`
	StudentUsernames []string `json:"student_usernames"`
}

// SectionLink associates a course with a section (many-to-many).
type SectionLink struct {
	CourseID  int `json:"course_id"`
	SectionID int `json:"section_id"`
}

// Schedule is the meeting slot for a (course, section) pair. At most
// one row exists per pair; writes are upserts.
type Schedule struct {
	CourseID  int    `json:"course_id"`
	SectionID int    `json:"section_id"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Room      string `json:"room"`
}

// SectionUpdate carries a partial section mutation; nil fields are
// left untouched.
type SectionUpdate struct {
	Name             *string
	Students         *int
	StudentUsernames *[]string
}
