package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
	"github.com/heartmarshall/leeloo-sync/internal/metrics"
	"github.com/heartmarshall/leeloo-sync/internal/service/gateway"
	"github.com/heartmarshall/leeloo-sync/internal/transport/middleware"
	"github.com/heartmarshall/leeloo-sync/pkg/ctxutil"
)

type gatewayService interface {
	SyncCourse(ctx context.Context, input gateway.CourseSyncInput) (gateway.CourseSyncResult, error)
	SyncCategory(ctx context.Context, input gateway.CategoryPayload) (gateway.CategorySyncResult, error)
	DeleteCategory(ctx context.Context, id int64) error
	DuplicateCategory(ctx context.Context, id int64) (gateway.CategorySyncResult, error)
	SyncItem(ctx context.Context, input gateway.ItemPayload) (int64, error)
	DeleteItem(ctx context.Context, id int64) error
	DuplicateItem(ctx context.Context, id int64) (int64, error)
	SyncTags(ctx context.Context, input gateway.TagsSyncInput) ([]domain.TagLink, error)
	CombineTags(ctx context.Context, input gateway.CombineTagsInput) error
	DeleteTag(ctx context.Context, id int64) error
	SyncScale(ctx context.Context, input gateway.ScalePayload) (int64, error)
	DeleteScale(ctx context.Context, id int64) error
	SyncActivityWindow(ctx context.Context, input gateway.ActivityWindowInput) (bool, error)
	SyncSettings(ctx context.Context, input gateway.SettingsInput) (int, error)
	Enrol(ctx context.Context, input gateway.EnrolPayload) error
	Unenrol(ctx context.Context, input gateway.EnrolPayload) error
}

type analyticsService interface {
	CourseGrade(ctx context.Context, userID, courseID int64) (*domain.CourseGrade, error)
	CompletionPercentage(ctx context.Context, userID, courseID int64) (string, error)
	AttemptCount(ctx context.Context, userID, quizID int64) (int, error)
	GradeCategories(ctx context.Context, courseID int64) ([]domain.GradeCategory, error)
	History(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.JournalRecord, error)
}

type installURLResolver interface {
	InstallURL(ctx context.Context) (string, error)
}

// wsFunc serves one named web-service function and returns its string result.
type wsFunc func(ctx context.Context, p params) (string, error)

// WebServiceHandler dispatches named web-service functions.
type WebServiceHandler struct {
	gateway   gatewayService
	analytics analyticsService
	site      installURLResolver
	log       *slog.Logger
	version   string
	maxBytes  int64
	functions map[string]wsFunc
}

// NewWebServiceHandler creates the handler and registers every function.
func NewWebServiceHandler(
	log *slog.Logger,
	gw gatewayService,
	analytics analyticsService,
	site installURLResolver,
	version string,
	maxBodyBytes int64,
) *WebServiceHandler {
	h := &WebServiceHandler{
		gateway:   gw,
		analytics: analytics,
		site:      site,
		log:       log.With("handler", "webservice"),
		version:   version,
		maxBytes:  maxBodyBytes,
	}
	h.functions = h.registry()
	return h
}

// Functions lists the registered function names in sorted order.
func (h *WebServiceHandler) Functions() []string {
	names := make([]string, 0, len(h.functions))
	for name := range h.functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ServeHTTP serves POST /webservice/rest/{function} and
// /webservice/rest/server.php?wsfunction=….
func (h *WebServiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := middleware.FunctionName(r)
	fn, ok := h.functions[name]
	if !ok {
		middleware.WriteException(w, http.StatusNotFound, middleware.Exception{
			Exception: "dml_missing_record_exception",
			ErrorCode: "invalidrecord",
			Message:   "Can't find data record in database table external_functions.",
		})
		return
	}

	grants := ctxutil.GrantedFunctionsFromCtx(r.Context())
	if len(grants) > 0 && !slices.Contains(grants, name) {
		middleware.WriteException(w, http.StatusForbidden, middleware.Exception{
			Exception: "webservice_access_exception",
			ErrorCode: "accessexception",
			Message:   "Access control exception",
		})
		return
	}

	ctx := ctxutil.WithFunction(r.Context(), name)
	start := time.Now()

	p, err := readParams(w, r, h.maxBytes)
	var result string
	if err == nil {
		result, err = fn(ctx, p)
	}
	metrics.RecordWSCall(name, time.Since(start), err)

	if err != nil {
		h.writeError(ctx, w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeError maps a call error to a sentinel result or an exception body.
func (h *WebServiceHandler) writeError(ctx context.Context, w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrUnknownID),
		errors.Is(err, domain.ErrInUse):
		h.log.InfoContext(ctx, "ws call rejected",
			slog.String("function", name),
			slog.String("reason", err.Error()),
		)
		writeJSON(w, http.StatusOK, "0")

	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, middleware.Exception{
			Exception: "invalid_parameter_exception",
			ErrorCode: "invalidparameter",
			Message:   "Invalid parameter value detected",
			DebugInfo: validationDetail(err),
		})

	default:
		h.log.ErrorContext(ctx, "ws call failed",
			slog.String("function", name),
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		writeJSON(w, http.StatusInternalServerError, middleware.Exception{
			Exception: "moodle_exception",
			ErrorCode: "internalerror",
			Message:   "Internal error",
		})
	}
}

func validationDetail(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	detail := ""
	for i, fe := range ve.Errors {
		if i > 0 {
			detail += "; "
		}
		detail += fe.Field + ": " + fe.Message
	}
	return detail
}

// encode renders v as a JSON string result.
func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
