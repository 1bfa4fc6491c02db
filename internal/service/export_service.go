package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	appErrors "github.com/marcriv/campushub-api/pkg/errors"
	"github.com/marcriv/campushub-api/pkg/export"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type exportSectionSource interface {
	SectionsForCourse(courseID int) []models.Section
	Section(id int) (models.Section, bool)
	Schedules() []models.Schedule
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders roster and schedule downloads.
type ExportService struct {
	courses  courseLookup
	sections exportSectionSource
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(courses courseLookup, sections exportSectionSource, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{courses: courses, sections: sections, csv: csv, pdf: pdf, logger: logger}
}

// Roster renders the member list of every section linked to a course.
func (s *ExportService) Roster(courseID int, format ExportFormat) (*ExportFile, error) {
	course, found := s.courses.Course(courseID)
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	rows := []map[string]string{}
	for _, sec := range s.sections.SectionsForCourse(courseID) {
		for _, uname := range sec.StudentUsernames {
			rows = append(rows, map[string]string{
				"Course":   course.Code,
				"Section":  sec.Name,
				"Username": uname,
			})
		}
	}
	dataset := export.Dataset{
		Headers: []string{"Course", "Section", "Username"},
		Rows:    rows,
	}
	title := fmt.Sprintf("Roster %s %s", course.Code, course.Name)
	return s.render(dataset, title, fmt.Sprintf("roster_%s", course.Code), format)
}

// Schedules renders every schedule row with course and section names
// resolved.
func (s *ExportService) Schedules(format ExportFormat) (*ExportFile, error) {
	rows := []map[string]string{}
	for _, sch := range s.sections.Schedules() {
		courseName := fmt.Sprintf("#%d", sch.CourseID)
		if course, found := s.courses.Course(sch.CourseID); found {
			courseName = course.Code
		}
		sectionName := fmt.Sprintf("#%d", sch.SectionID)
		if sec, found := s.sections.Section(sch.SectionID); found {
			sectionName = sec.Name
		}
		rows = append(rows, map[string]string{
			"Course":  courseName,
			"Section": sectionName,
			"Day":     sch.Day,
			"Time":    sch.Time,
			"Room":    sch.Room,
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Course", "Section", "Day", "Time", "Room"},
		Rows:    rows,
	}
	return s.render(dataset, "Class Schedules", "schedules", format)
}

func (s *ExportService) render(dataset export.Dataset, title, baseName string, format ExportFormat) (*ExportFile, error) {
	var payload []byte
	var contentType string
	var err error

	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "export rendering failed")
	}

	timestamp := time.Now().UTC().Format("20060102_150405")
	return &ExportFile{
		Filename:    fmt.Sprintf("%s_%s.%s", baseName, timestamp, format),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}
