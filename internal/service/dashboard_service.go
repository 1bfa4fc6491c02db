package service

import (
	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
)

type directoryReader interface {
	Users() []models.User
}

type catalogCounter interface {
	Len() int
}

type submissionCounter interface {
	SubmissionCount() int
}

type metricsSnapshotter interface {
	Snapshot() models.SystemMetrics
}

// DashboardService composes the admin overview from the stores and the
// runtime metrics.
type DashboardService struct {
	directory   directoryReader
	catalog     catalogCounter
	submissions submissionCounter
	metrics     metricsSnapshotter
	logger      *zap.Logger
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(directory directoryReader, catalog catalogCounter, submissions submissionCounter, metrics metricsSnapshotter, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		directory:   directory,
		catalog:     catalog,
		submissions: submissions,
		metrics:     metrics,
		logger:      logger,
	}
}

// Stats returns the current dashboard snapshot.
func (s *DashboardService) Stats() models.DashboardStats {
	stats := models.DashboardStats{
		ActiveUsers:   len(s.directory.Users()),
		ActiveCourses: s.catalog.Len(),
		QuizzesTaken:  s.submissions.SubmissionCount(),
		SystemHealth:  "ok",
	}
	if s.metrics != nil {
		stats.Runtime = s.metrics.Snapshot()
	}
	return stats
}
