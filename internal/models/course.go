package models

// Course is a catalog entry. Students is a derived value: every read
// recomputes it from section membership through the link table. The
// StudentUsernames list is the legacy direct-enrollment roster and is
// still what the student view filters on.
type Course struct {
	ID               int      `json:"id"`
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Teacher          string   `json:"teacher"`
	Description      string   `json:"description"`
	Students         int      `json:"students"`
	Color            string   `json:"color"`
	StudentUsernames []string `json:"student_usernames,omitempty"`
}
