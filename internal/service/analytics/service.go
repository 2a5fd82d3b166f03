// Package analytics serves the read-only reporting functions and the sync
// journal history.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

type reportRepo interface {
	CourseGrade(ctx context.Context, userID, courseID int64) (domain.CourseGrade, error)
	Completion(ctx context.Context, userID, courseID int64) (domain.Completion, error)
	AttemptCount(ctx context.Context, userID, quizID int64) (int, error)
}

type categoryRepo interface {
	ListByCourse(ctx context.Context, courseID int64) ([]domain.GradeCategory, error)
}

type journalReader interface {
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.JournalRecord, error)
}

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Service provides reporting reads.
type Service struct {
	reports    reportRepo
	categories categoryRepo
	journal    journalReader
	log        *slog.Logger
}

// NewService creates a new analytics service.
func NewService(log *slog.Logger, reports reportRepo, categories categoryRepo, journal journalReader) *Service {
	return &Service{
		reports:    reports,
		categories: categories,
		journal:    journal,
		log:        log.With("service", "analytics"),
	}
}

// CourseGrade returns the user's course total, or nil when the user has no
// grade in the course.
func (s *Service) CourseGrade(ctx context.Context, userID, courseID int64) (*domain.CourseGrade, error) {
	if err := positive(idParam{"userid", userID}, idParam{"courseid", courseID}); err != nil {
		return nil, err
	}

	g, err := s.reports.CourseGrade(ctx, userID, courseID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("course grade: %w", err)
	}
	return &g, nil
}

// CompletionPercentage returns the completed share of tracked modules as a
// two-decimal string.
func (s *Service) CompletionPercentage(ctx context.Context, userID, courseID int64) (string, error) {
	if err := positive(idParam{"userid", userID}, idParam{"courseid", courseID}); err != nil {
		return "", err
	}

	c, err := s.reports.Completion(ctx, userID, courseID)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return c.Percentage(), nil
}

// AttemptCount returns the number of finished quiz attempts.
func (s *Service) AttemptCount(ctx context.Context, userID, quizID int64) (int, error) {
	if err := positive(idParam{"userid", userID}, idParam{"quizid", quizID}); err != nil {
		return 0, err
	}

	n, err := s.reports.AttemptCount(ctx, userID, quizID)
	if err != nil {
		return 0, fmt.Errorf("attempt count: %w", err)
	}
	return n, nil
}

// GradeCategories lists the categories of a course ordered by path.
func (s *Service) GradeCategories(ctx context.Context, courseID int64) ([]domain.GradeCategory, error) {
	if err := positive(idParam{"courseid", courseID}); err != nil {
		return nil, err
	}

	cats, err := s.categories.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list grade categories: %w", err)
	}
	if cats == nil {
		cats = []domain.GradeCategory{}
	}
	return cats, nil
}

// History returns the journal records of an entity, newest first. A zero
// limit means DefaultHistoryLimit.
func (s *Service) History(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.JournalRecord, error) {
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	if entityID < 0 {
		return nil, domain.NewValidationError("entity_id", "out of range")
	}
	switch {
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit < 0 || limit > MaxHistoryLimit:
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxHistoryLimit))
	}

	records, err := s.journal.GetByEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("journal history: %w", err)
	}
	if records == nil {
		records = []domain.JournalRecord{}
	}
	return records, nil
}

type idParam struct {
	name  string
	value int64
}

func positive(ids ...idParam) error {
	var errs []domain.FieldError
	for _, id := range ids {
		if id.value <= 0 {
			errs = append(errs, domain.FieldError{Field: id.name, Message: "out of range"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
