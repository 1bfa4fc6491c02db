package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/marcriv/campushub-api/internal/models"
	"github.com/marcriv/campushub-api/pkg/kvstore"
)

// Snapshot key suffixes for the persisted registry collections. Each
// collection is loaded and saved independently.
const (
	SectionsKeySuffix  = "sections"
	LinksKeySuffix     = "section_links"
	SchedulesKeySuffix = "schedules"
)

// SectionRegistry holds sections, the course-section link table and
// per-pair schedules. It is the persisted store variant: every
// mutation re-saves the affected collection to the key-value cache,
// and construction loads each collection with a fallback to the seed
// dataset when a snapshot is absent or unreadable.
type SectionRegistry struct {
	mu        sync.RWMutex
	sections  []models.Section
	links     []models.SectionLink
	schedules []models.Schedule
	snapshots kvstore.Store
	prefix    string
	logger    *zap.Logger
}

// SectionRegistrySeed provides the fallback collections.
type SectionRegistrySeed struct {
	Sections  []models.Section
	Links     []models.SectionLink
	Schedules []models.Schedule
}

// NewSectionRegistry loads the three snapshot collections, seeding any
// that are missing.
func NewSectionRegistry(seed SectionRegistrySeed, snapshots kvstore.Store, keyPrefix string, logger *zap.Logger) *SectionRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &SectionRegistry{
		snapshots: snapshots,
		prefix:    keyPrefix,
		logger:    logger,
	}

	ctx := context.Background()
	if !r.load(ctx, SectionsKeySuffix, &r.sections) {
		r.sections = append([]models.Section(nil), seed.Sections...)
	}
	if !r.load(ctx, LinksKeySuffix, &r.links) {
		r.links = append([]models.SectionLink(nil), seed.Links...)
	}
	if !r.load(ctx, SchedulesKeySuffix, &r.schedules) {
		r.schedules = append([]models.Schedule(nil), seed.Schedules...)
	}
	return r
}

func (r *SectionRegistry) load(ctx context.Context, suffix string, dest interface{}) bool {
	if r.snapshots == nil {
		return false
	}
	found, err := r.snapshots.Get(ctx, r.prefix+suffix, dest)
	if err != nil {
		r.logger.Warn("snapshot load failed, using seed", zap.String("key", r.prefix+suffix), zap.Error(err))
		return false
	}
	return found
}

func (r *SectionRegistry) saveLocked(ctx context.Context, suffix string, value interface{}) {
	if r.snapshots == nil {
		return
	}
	_ = r.snapshots.Set(ctx, r.prefix+suffix, value)
}

// Sections returns a copy of the registry in insertion order.
func (r *SectionRegistry) Sections() []models.Section {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copySections(r.sections)
}

// SectionsForCourse returns the sections linked to the course, in
// registry order.
func (r *SectionRegistry) SectionsForCourse(courseID int) []models.Section {
	r.mu.RLock()
	defer r.mu.RUnlock()

	linked := make(map[int]struct{})
	for _, l := range r.links {
		if l.CourseID == courseID {
			linked[l.SectionID] = struct{}{}
		}
	}

	var out []models.Section
	for _, sec := range r.sections {
		if _, ok := linked[sec.ID]; ok {
			out = append(out, copySection(sec))
		}
	}
	return out
}

// Section returns the section with the given id.
func (r *SectionRegistry) Section(id int) (models.Section, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sec := range r.sections {
		if sec.ID == id {
			return copySection(sec), true
		}
	}
	return models.Section{}, false
}

// AddSection appends a section under the next id (max existing + 1)
// and links it to the given course. Returns the assigned id.
func (r *SectionRegistry) AddSection(ctx context.Context, sec models.Section, courseID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := 0
	for _, existing := range r.sections {
		if existing.ID > nextID {
			nextID = existing.ID
		}
	}
	nextID++

	sec.ID = nextID
	r.sections = append(r.sections, copySection(sec))
	r.links = append(r.links, models.SectionLink{CourseID: courseID, SectionID: nextID})

	r.saveLocked(ctx, SectionsKeySuffix, r.sections)
	r.saveLocked(ctx, LinksKeySuffix, r.links)
	return nextID
}

// Link associates a section with a course. Inserting an existing pair
// is a no-op.
func (r *SectionRegistry) Link(ctx context.Context, sectionID, courseID int) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.links {
		if l.CourseID == courseID && l.SectionID == sectionID {
			return OutcomeUnchanged
		}
	}
	r.links = append(r.links, models.SectionLink{CourseID: courseID, SectionID: sectionID})
	r.saveLocked(ctx, LinksKeySuffix, r.links)
	return OutcomeApplied
}

// Unlink removes the pair and cascades to its schedule.
func (r *SectionRegistry) Unlink(ctx context.Context, sectionID, courseID int) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.links[:0]
	removed := false
	for _, l := range r.links {
		if l.CourseID == courseID && l.SectionID == sectionID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return OutcomeUnchanged
	}
	r.links = kept
	r.removeScheduleLocked(courseID, sectionID)

	r.saveLocked(ctx, LinksKeySuffix, r.links)
	r.saveLocked(ctx, SchedulesKeySuffix, r.schedules)
	return OutcomeApplied
}

// UpdateSection merges the non-nil fields into the section.
func (r *SectionRegistry) UpdateSection(ctx context.Context, id int, upd models.SectionUpdate) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sections {
		if r.sections[i].ID != id {
			continue
		}
		if upd.Name != nil {
			r.sections[i].Name = *upd.Name
		}
		if upd.Students != nil {
			r.sections[i].Students = *upd.Students
		}
		if upd.StudentUsernames != nil {
			r.sections[i].StudentUsernames = append([]string(nil), (*upd.StudentUsernames)...)
		}
		r.saveLocked(ctx, SectionsKeySuffix, r.sections)
		return OutcomeApplied
	}
	return OutcomeNotFound
}

// DeleteSection removes the section, all its links and all its
// schedules in one pass.
func (r *SectionRegistry) DeleteSection(ctx context.Context, id int) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	keptSections := r.sections[:0]
	found := false
	for _, sec := range r.sections {
		if sec.ID == id {
			found = true
			continue
		}
		keptSections = append(keptSections, sec)
	}
	if !found {
		return OutcomeNotFound
	}
	r.sections = keptSections

	keptLinks := r.links[:0]
	for _, l := range r.links {
		if l.SectionID != id {
			keptLinks = append(keptLinks, l)
		}
	}
	r.links = keptLinks

	keptSchedules := r.schedules[:0]
	for _, sch := range r.schedules {
		if sch.SectionID != id {
			keptSchedules = append(keptSchedules, sch)
		}
	}
	r.schedules = keptSchedules

	r.saveLocked(ctx, SectionsKeySuffix, r.sections)
	r.saveLocked(ctx, LinksKeySuffix, r.links)
	r.saveLocked(ctx, SchedulesKeySuffix, r.schedules)
	return OutcomeApplied
}

// Schedule returns the schedule row for the pair, if any.
func (r *SectionRegistry) Schedule(courseID, sectionID int) (models.Schedule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sch := range r.schedules {
		if sch.CourseID == courseID && sch.SectionID == sectionID {
			return sch, true
		}
	}
	return models.Schedule{}, false
}

// Schedules returns a copy of all schedule rows.
func (r *SectionRegistry) Schedules() []models.Schedule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Schedule(nil), r.schedules...)
}

// SetSchedule upserts the schedule for a pair: an existing row is
// replaced, never duplicated.
func (r *SectionRegistry) SetSchedule(ctx context.Context, courseID, sectionID int, day, timeOfDay, room string) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := models.Schedule{CourseID: courseID, SectionID: sectionID, Day: day, Time: timeOfDay, Room: room}
	for i := range r.schedules {
		if r.schedules[i].CourseID == courseID && r.schedules[i].SectionID == sectionID {
			r.schedules[i] = row
			r.saveLocked(ctx, SchedulesKeySuffix, r.schedules)
			return OutcomeApplied
		}
	}
	r.schedules = append(r.schedules, row)
	r.saveLocked(ctx, SchedulesKeySuffix, r.schedules)
	return OutcomeApplied
}

// RemoveSchedule deletes the row for the pair if present.
func (r *SectionRegistry) RemoveSchedule(ctx context.Context, courseID, sectionID int) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.removeScheduleLocked(courseID, sectionID) {
		return OutcomeUnchanged
	}
	r.saveLocked(ctx, SchedulesKeySuffix, r.schedules)
	return OutcomeApplied
}

func (r *SectionRegistry) removeScheduleLocked(courseID, sectionID int) bool {
	kept := r.schedules[:0]
	removed := false
	for _, sch := range r.schedules {
		if sch.CourseID == courseID && sch.SectionID == sectionID {
			removed = true
			continue
		}
		kept = append(kept, sch)
	}
	r.schedules = kept
	return removed
}

func copySection(sec models.Section) models.Section {
	sec.StudentUsernames = append([]string(nil), sec.StudentUsernames...)
	return sec
}

func copySections(sections []models.Section) []models.Section {
	out := make([]models.Section, len(sections))
	for i, sec := range sections {
		out[i] = copySection(sec)
	}
	return out
}
