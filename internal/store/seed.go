package store

import (
	"time"

	"github.com/marcriv/campushub-api/internal/models"
)

// Seed data mirrors the institutional mock dataset. Quiz deadlines in
// the calendar are generated relative to the current date so the demo
// content never goes stale; holidays sit on fixed calendar days.

const placeholderPhotoURL = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"

func daysFromNow(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func fixedHoliday(month time.Month, day int) string {
	now := time.Now()
	return time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// SeedUsers returns the directory accounts.
func SeedUsers() []models.User {
	return []models.User{
		{Username: "0112345678", Password: "teacher", Role: models.RoleTeacher, Name: "Donald Francisco"},
		{Username: "0111111111", Password: "teacher", Role: models.RoleTeacher, Name: "Alice Mao"},
		{Username: "0112222222", Password: "teacher", Role: models.RoleTeacher, Name: "Brian Lopez"},
		{Username: "0113333333", Password: "teacher", Role: models.RoleTeacher, Name: "Celine Garcia"},
		{Username: "0114444444", Password: "teacher", Role: models.RoleTeacher, Name: "Diego Santos"},

		{Username: "0212345678", Password: "student", Role: models.RoleStudent, Name: "Chitoge Kirisaki"},
		{Username: "0221111111", Password: "student", Role: models.RoleStudent, Name: "Mika Tan"},
		{Username: "0222222222", Password: "student", Role: models.RoleStudent, Name: "Ken Yamada"},
		{Username: "0223333333", Password: "student", Role: models.RoleStudent, Name: "Sofia Dafirst"},
		{Username: "0224444444", Password: "student", Role: models.RoleStudent, Name: "Liam Cruz"},
	}
}

// SeedCourses returns the course catalog. Enrollment counts are left at
// zero; the catalog derives them from section membership on every read.
func SeedCourses() []models.Course {
	return []models.Course{
		{ID: 1, Code: "CS401", Name: "Information Assurance", Teacher: "Donald Francisco", Description: "This course covers the principles of information security, risk management, cryptography, and security policies to protect information systems against threats and vulnerabilities.", Color: "red", StudentUsernames: []string{"0212345678"}},
		{ID: 2, Code: "CS301", Name: "Automata", Teacher: "Donald Francisco", Description: "Deep dive into automata theory.", Color: "blue", StudentUsernames: []string{"0212345678"}},
		{ID: 3, Code: "CS302", Name: "Computer Architecture", Teacher: "Donald Francisco", Description: "Pipelines, caches, and performance optimization.", Color: "green", StudentUsernames: []string{"0212345678"}},
		{ID: 4, Code: "CS303", Name: "Operating Systems", Teacher: "Donald Francisco", Description: "This course covers the principles of operating systems, including process management, memory management, file systems, and device drivers.", Color: "teal", StudentUsernames: []string{}},
		{ID: 5, Code: "IT201", Name: "Web Development", Teacher: "Alice Mao", Description: "This course covers the principles of web development, including HTML, CSS, JavaScript, and web frameworks.", Color: "purple", StudentUsernames: []string{"0212345678"}},
		{ID: 6, Code: "CS201", Name: "Data Structures", Teacher: "Alice Mao", Description: "This course covers the principles of data structures, including arrays, linked lists, stacks, queues, and trees.", Color: "orange", StudentUsernames: []string{"0212345678"}},
		{ID: 7, Code: "IT301", Name: "Database Systems", Teacher: "Gojo Satoru", Description: "This course covers the principles of database systems, including database design, SQL, and NoSQL databases.", Color: "pink", StudentUsernames: []string{}},
	}
}

// SeedSections returns the section registry seed: sections, the
// course-section link table and per-pair schedules.
func SeedSections() SectionRegistrySeed {
	return SectionRegistrySeed{
		Sections: []models.Section{
			{ID: 1, Name: "CS31A", Students: 3, StudentUsernames: []string{"0212345678", "0221111111", "0222222222"}},
			{ID: 2, Name: "IT11B", Students: 3, StudentUsernames: []string{"0223333333", "0224444444", "0225555555"}},
			{ID: 3, Name: "CS22A", Students: 3, StudentUsernames: []string{"0226666666", "0227777777", "0228888888"}},
			{ID: 4, Name: "IT22A", Students: 3, StudentUsernames: []string{"0229999999", "0231111111", "0232222222"}},
			{ID: 5, Name: "CS33A", Students: 3, StudentUsernames: []string{"0233333333", "0234444444", "0235555555"}},
		},
		Links: []models.SectionLink{
			{CourseID: 1, SectionID: 1},
			{CourseID: 2, SectionID: 2},
			{CourseID: 3, SectionID: 3},
			{CourseID: 5, SectionID: 4},
			{CourseID: 6, SectionID: 1},
			{CourseID: 6, SectionID: 5},
		},
		Schedules: []models.Schedule{
			{CourseID: 1, SectionID: 1, Day: "Monday", Time: "15:00", Room: "Room 101"},
			{CourseID: 2, SectionID: 2, Day: "Tuesday", Time: "10:00", Room: "Room 202"},
			{CourseID: 3, SectionID: 3, Day: "Wednesday", Time: "13:00", Room: "Room 303"},
			{CourseID: 5, SectionID: 4, Day: "Thursday", Time: "15:00", Room: "Room 404"},
			{CourseID: 6, SectionID: 1, Day: "Tuesday", Time: "13:00", Room: "Room 105"},
			{CourseID: 6, SectionID: 5, Day: "Friday", Time: "09:00", Room: "Room 505"},
		},
	}
}

// SeedCalendarEvents returns per-username calendar seed lists.
func SeedCalendarEvents() map[string][]models.CalendarEvent {
	return map[string][]models.CalendarEvent{
		"0112345678": {
			{ID: 1, Title: "Quiz 1 Due", Date: daysFromNow(10), Type: models.EventQuiz, IsDeadline: true},
			{ID: 2, Title: "Automata Quiz 3 Due", Date: daysFromNow(15), Type: models.EventQuiz, IsDeadline: true},
			{ID: 3, Title: "Faculty Meeting", Date: daysFromNow(7), Type: models.EventOther, Time: "14:00"},
			{ID: 4, Title: "Osmeña Day", Date: fixedHoliday(time.September, 9), Type: models.EventHoliday},
		},
		"0212345678": {
			{ID: 1, Title: "IA Week 1 Quiz", Date: daysFromNow(10), Type: models.EventQuiz, IsDeadline: true},
			{ID: 2, Title: "Web Dev Assignment 2", Date: daysFromNow(12), Type: models.EventOther, Time: "23:59", IsDeadline: true},
			{ID: 3, Title: "Study Group", Date: daysFromNow(6), Type: models.EventOther, Time: "18:00"},
			{ID: 4, Title: "School Holiday", Date: fixedHoliday(time.September, 30), Type: models.EventHoliday},
		},
	}
}

// SeedTeacherQuizzes returns teaching-side quiz summaries by username.
func SeedTeacherQuizzes() map[string][]models.TeacherQuiz {
	return map[string][]models.TeacherQuiz{
		"0112345678": {
			{ID: 1, Subject: "Information Assurance", Title: "Week 1 Quiz", DueDate: "May 15", Class: "CS31A", Submitted: 12, Total: 24, Color: "blue"},
			{ID: 2, Subject: "Information Assurance", Title: "Week 2 Quiz", DueDate: "May 18", Class: "CS31A", Submitted: 8, Total: 24, Color: "green"},
			{ID: 3, Subject: "Computer Architecture", Title: "Week 5 Quiz", DueDate: "May 20", Class: "CS31A", Submitted: 3, Total: 24, Color: "purple"},
			{ID: 4, Subject: "Operating Systems", Title: "Process Management Quiz", DueDate: "May 25", Class: "CS31B", Submitted: 17, Total: 28, Color: "red"},
			{ID: 5, Subject: "Automata", Title: "PDA and CFG Quiz", DueDate: "May 28", Class: "CS31C", Submitted: 9, Total: 22, Color: "yellow"},
		},
	}
}

// SeedStudentQuizzes returns assigned-quiz summaries by username.
func SeedStudentQuizzes() map[string][]models.StudentQuiz {
	return map[string][]models.StudentQuiz{
		"0212345678": {
			{ID: 1, Subject: "Information Assurance", Title: "Week 1 Quiz", DueDate: "May 15", Class: "CS31A", TimeLimit: "45 min", Status: "Not Started", Color: "blue"},
			{ID: 2, Subject: "Information Assurance", Title: "Week 2 Quiz", DueDate: "May 18", Class: "CS31A", TimeLimit: "30 min", Status: "Not Started", Color: "green"},
			{ID: 3, Subject: "Computer Architecture", Title: "Week 5 Quiz", DueDate: "May 20", Class: "CS31A", TimeLimit: "25 min", Status: "Not Started", Color: "purple"},
			{ID: 4, Subject: "Web Development", Title: "Flexbox & Grid Quiz", DueDate: "May 22", Class: "WD101", TimeLimit: "20 min", Status: "Not Started", Color: "indigo"},
		},
	}
}

// SeedTeacherProfiles returns teacher biographical records by username.
func SeedTeacherProfiles() map[string]models.TeacherProfile {
	return map[string]models.TeacherProfile{
		"0112345678": {
			Username:   "0112345678",
			FirstName:  "Donald",
			LastName:   "Francisco",
			Email:      "donald.francisco@university.edu",
			Phone:      "(555) 000-0000",
			Department: "Information Technology",
			Bio:        "IT faculty focusing on systems and security. Passionate about student-centered learning and building practical projects.",
			PhotoURL:   placeholderPhotoURL,
		},
	}
}

// SeedStudentProfiles returns student biographical records by username.
func SeedStudentProfiles() map[string]models.StudentProfile {
	return map[string]models.StudentProfile{
		"0212345678": {
			Username:  "0212345678",
			FirstName: "Chitoge",
			LastName:  "Kirisaki",
			Email:     "chitoge.kirisaki@student.university.edu",
			Phone:     "(555) 900-0000",
			YearLevel: "3rd Year",
			Program:   "BS Information Technology",
			Bio:       "Active in programming clubs and hackathons. Enjoys building front-end projects and UI experiments.",
			PhotoURL:  placeholderPhotoURL,
		},
		"0221111111": {
			Username:  "0221111111",
			FirstName: "Mika",
			LastName:  "Tan",
			Email:     "mika.tan@student.university.edu",
			Phone:     "(555) 911-1111",
			YearLevel: "1st Year",
			Program:   "BS Computer Science",
			Bio:       "Interested in AI fundamentals and discrete math. Loves study groups and tutoring peers.",
			PhotoURL:  placeholderPhotoURL,
		},
		"0222222222": {
			Username:  "0222222222",
			FirstName: "Ken",
			LastName:  "Yamada",
			Email:     "ken.yamada@student.university.edu",
			Phone:     "(555) 922-2222",
			YearLevel: "2nd Year",
			Program:   "BS Information Systems",
			Bio:       "Enjoys data visualization and dashboard building. Working on an open-source analytics tool.",
			PhotoURL:  placeholderPhotoURL,
		},
		"0223333333": {
			Username:  "0223333333",
			FirstName: "Sofia",
			LastName:  "Romero",
			Email:     "sofia.romero@student.university.edu",
			Phone:     "(555) 933-3333",
			YearLevel: "4th Year",
			Program:   "BS Software Engineering",
			Bio:       "Team lead for capstone on microservices. Passionate about clean code and documentation.",
			PhotoURL:  placeholderPhotoURL,
		},
		"0224444444": {
			Username:  "0224444444",
			FirstName: "Liam",
			LastName:  "Cruz",
			Email:     "liam.cruz@student.university.edu",
			Phone:     "(555) 944-4444",
			YearLevel: "3rd Year",
			Program:   "BS Cybersecurity",
			Bio:       "Competes in CTFs and studies network security. Aims to become a blue team analyst.",
			PhotoURL:  placeholderPhotoURL,
		},
	}
}
