package models

import "time"

// DashboardStats is the admin overview snapshot.
type DashboardStats struct {
	ActiveUsers   int           `json:"active_users"`
	ActiveCourses int           `json:"active_courses"`
	QuizzesTaken  int           `json:"quizzes_taken"`
	SystemHealth  string        `json:"system_health"`
	Runtime       SystemMetrics `json:"runtime"`
}

// SystemMetrics aggregates runtime counters for the dashboard.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	KVReads                  uint64    `json:"kv_reads"`
	KVReadHitRatio           float64   `json:"kv_read_hit_ratio"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
