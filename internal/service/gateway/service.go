// Package gateway applies inbound LXP sync calls to the LMS data model.
// Every mutating operation runs in one transaction together with its
// sync journal record.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
	"github.com/heartmarshall/leeloo-sync/pkg/ctxutil"
)

type courseRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Course, error)
	FindByKeys(ctx context.Context, shortname, idnumber string) ([]domain.Course, error)
	Create(ctx context.Context, c domain.Course) (domain.Course, error)
	Update(ctx context.Context, c domain.Course) (domain.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, id int64) (domain.GradeCategory, error)
	ListByCourse(ctx context.Context, courseID int64) ([]domain.GradeCategory, error)
	Create(ctx context.Context, c domain.GradeCategory) (domain.GradeCategory, error)
	Update(ctx context.Context, c domain.GradeCategory) (domain.GradeCategory, error)
	SetPlacement(ctx context.Context, m domain.CategoryMove) error
	ApplyMoves(ctx context.Context, moves []domain.CategoryMove) error
	Delete(ctx context.Context, id int64) error
}

type itemRepo interface {
	GetByID(ctx context.Context, id int64) (domain.GradeItem, error)
	GetCategoryItem(ctx context.Context, categoryID int64) (domain.GradeItem, error)
	FindByIDNumber(ctx context.Context, courseID int64, idnumber string) ([]domain.GradeItem, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.GradeItem, error)
	Create(ctx context.Context, g domain.GradeItem) (domain.GradeItem, error)
	Update(ctx context.Context, g domain.GradeItem) (domain.GradeItem, error)
	MoveItems(ctx context.Context, from int64, to *int64, now int64) (int64, error)
	DeleteCategoryItem(ctx context.Context, categoryID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	CountByScale(ctx context.Context, scaleID int64) (int, error)
}

type tagRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Tag, error)
	GetByName(ctx context.Context, name string) (domain.Tag, error)
	Create(ctx context.Context, t domain.Tag) (domain.Tag, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	DetachTags(ctx context.Context, ids []int64) (int64, error)
	ListInstances(ctx context.Context, itemType string, itemID int64) ([]domain.TagInstance, error)
	ListInstancesByTags(ctx context.Context, tagIDs []int64) ([]domain.TagInstance, error)
	EnsureInstance(ctx context.Context, tagID int64, itemType string, itemID, now int64) (bool, error)
	DeleteInstance(ctx context.Context, tagID int64, itemType string, itemID int64) (bool, error)
	InstanceExists(ctx context.Context, tagID int64, itemType string, itemID int64) (bool, error)
	CountInstances(ctx context.Context, tagID int64) (int, error)
}

type scaleRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Scale, error)
	Create(ctx context.Context, s domain.Scale) (domain.Scale, error)
	Update(ctx context.Context, s domain.Scale) (domain.Scale, error)
	Delete(ctx context.Context, id int64) error
}

type activityRepo interface {
	SetWindow(ctx context.Context, u domain.ActivityWindowUpdate) (bool, error)
}

type settingsRepo interface {
	UpsertConfig(ctx context.Context, settings []domain.Setting) error
	UpsertCourse(ctx context.Context, courseID int64, settings []domain.Setting) error
}

type enrolRepo interface {
	FindUser(ctx context.Context, username, email string) (domain.User, error)
	RoleID(ctx context.Context, shortname string) (int64, error)
	UpsertEnrolment(ctx context.Context, e domain.Enrolment, now int64) error
	AssignRole(ctx context.Context, e domain.Enrolment, now int64) error
	DeleteEnrolment(ctx context.Context, userID, courseID int64) (bool, error)
	UnassignRoles(ctx context.Context, userID, courseID int64) (int64, error)
}

type journal interface {
	Log(ctx context.Context, record domain.JournalRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// cacheInvalidator drops cached site configuration after the leeloo
// settings group changes.
type cacheInvalidator interface {
	Invalidate()
}

// Repos groups the stores the gateway writes to.
type Repos struct {
	Courses    courseRepo
	Categories categoryRepo
	Items      itemRepo
	Tags       tagRepo
	Scales     scaleRepo
	Activities activityRepo
	Settings   settingsRepo
	Enrol      enrolRepo
}

// Service implements the sync functions.
type Service struct {
	courses    courseRepo
	categories categoryRepo
	items      itemRepo
	tags       tagRepo
	scales     scaleRepo
	activities activityRepo
	settings   settingsRepo
	enrol      enrolRepo
	journal    journal
	tx         txManager
	sitecfg    cacheInvalidator
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new gateway service. sitecfg may be nil.
func NewService(
	log *slog.Logger,
	repos Repos,
	journal journal,
	tx txManager,
	sitecfg cacheInvalidator,
) *Service {
	return &Service{
		courses:    repos.Courses,
		categories: repos.Categories,
		items:      repos.Items,
		tags:       repos.Tags,
		scales:     repos.Scales,
		activities: repos.Activities,
		settings:   repos.Settings,
		enrol:      repos.Enrol,
		journal:    journal,
		tx:         tx,
		sitecfg:    sitecfg,
		log:        log.With("service", "gateway"),
		now:        time.Now,
	}
}

// record writes a journal entry attributed to the calling sync function.
func (s *Service) record(
	ctx context.Context,
	entity domain.EntityType,
	id int64,
	action domain.JournalAction,
	changes map[string]any,
) error {
	err := s.journal.Log(ctx, domain.JournalRecord{
		Function:   ctxutil.FunctionFromCtx(ctx),
		EntityType: entity,
		EntityID:   id,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		return fmt.Errorf("journal %s %d: %w", entity, id, err)
	}
	return nil
}

func (s *Service) unix() int64 { return s.now().Unix() }

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }

// lookupErr reports a miss on an id supplied by the caller as
// domain.ErrUnknownID and wraps anything else.
func lookupErr(err error, entity domain.EntityType, id int64) error {
	if isNotFound(err) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrUnknownID)
	}
	return fmt.Errorf("get %s: %w", entity, err)
}
