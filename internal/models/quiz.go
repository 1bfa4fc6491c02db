package models

// TeacherQuiz summarizes a quiz from the owning teacher's side.
type TeacherQuiz struct {
	ID          int    `json:"id"`
	Subject     string `json:"subject"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Class       string `json:"class"`
	Submitted   int    `json:"submitted"`
	Total       int    `json:"total"`
	Color       string `json:"color"`
}

// StudentQuiz summarizes a quiz assigned to a student.
type StudentQuiz struct {
	ID          int    `json:"id"`
	Subject     string `json:"subject"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Class       string `json:"class"`
	TimeLimit   string `json:"time_limit"`
	Status      string `json:"status"`
	Color       string `json:"color"`
}
