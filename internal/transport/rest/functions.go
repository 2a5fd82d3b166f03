package rest

import (
	"context"
	"strconv"
	"time"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
	"github.com/heartmarshall/leeloo-sync/internal/service/gateway"
)

const success = "1"

func (h *WebServiceHandler) registry() map[string]wsFunc {
	return map[string]wsFunc{
		"course_sync":               h.courseSync,
		"grade_category_sync":       h.categorySync,
		"grade_category_delete":     h.byID(h.gateway.DeleteCategory),
		"grade_category_duplicate":  h.categoryDuplicate,
		"grade_item_sync":           h.itemSync,
		"grade_item_delete":         h.byID(h.gateway.DeleteItem),
		"grade_item_duplicate":      h.itemDuplicate,
		"tags_sync":                 h.tagsSync,
		"tags_combine":              h.tagsCombine,
		"tag_delete":                h.byID(h.gateway.DeleteTag),
		"scale_sync":                h.scaleSync,
		"scale_delete":              h.byID(h.gateway.DeleteScale),
		"activity_window_sync":      h.activityWindowSync,
		"settings_sync":             h.settingsSync,
		"enrol_user":                h.enrol(h.gateway.Enrol),
		"unenrol_user":              h.enrol(h.gateway.Unenrol),
		"journal_list":              h.journalList,
		"get_course_grade":          h.courseGrade,
		"get_completion_percentage": h.completion,
		"get_attempt_count":         h.attemptCount,
		"get_grade_categories":      h.gradeCategories,
		"site_info":                 h.siteInfo,
	}
}

// ---------------------------------------------------------------------------
// Sync functions
// ---------------------------------------------------------------------------

func (h *WebServiceHandler) courseSync(ctx context.Context, p params) (string, error) {
	var in gateway.CourseSyncInput
	if _, err := p.object("course_data", &in.Course, true); err != nil {
		return "", err
	}

	var cat gateway.CategoryPayload
	if found, err := p.object("category_data", &cat, false); err != nil {
		return "", err
	} else if found {
		in.Category = &cat
	}

	var item gateway.ItemPayload
	if found, err := p.object("item_data", &item, false); err != nil {
		return "", err
	} else if found {
		in.Item = &item
	}

	res, err := h.gateway.SyncCourse(ctx, in)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

func (h *WebServiceHandler) categorySync(ctx context.Context, p params) (string, error) {
	var in gateway.CategoryPayload
	if _, err := p.object("category_data", &in, true); err != nil {
		return "", err
	}
	res, err := h.gateway.SyncCategory(ctx, in)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

func (h *WebServiceHandler) categoryDuplicate(ctx context.Context, p params) (string, error) {
	id, err := p.id("id")
	if err != nil {
		return "", err
	}
	res, err := h.gateway.DuplicateCategory(ctx, id)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

func (h *WebServiceHandler) itemSync(ctx context.Context, p params) (string, error) {
	var in gateway.ItemPayload
	if _, err := p.object("item_data", &in, true); err != nil {
		return "", err
	}
	id, err := h.gateway.SyncItem(ctx, in)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (h *WebServiceHandler) itemDuplicate(ctx context.Context, p params) (string, error) {
	id, err := p.id("id")
	if err != nil {
		return "", err
	}
	newID, err := h.gateway.DuplicateItem(ctx, id)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(newID, 10), nil
}

func (h *WebServiceHandler) tagsSync(ctx context.Context, p params) (string, error) {
	itemType, err := p.required("itemtype")
	if err != nil {
		return "", err
	}
	itemID, err := p.id("itemid")
	if err != nil {
		return "", err
	}
	in := gateway.TagsSyncInput{ItemType: itemType, ItemID: itemID}
	if _, err := p.object("tags", &in.Tags, false); err != nil {
		return "", err
	}

	links, err := h.gateway.SyncTags(ctx, in)
	if err != nil {
		return "", err
	}
	if links == nil {
		links = []domain.TagLink{}
	}
	return encode(links)
}

func (h *WebServiceHandler) tagsCombine(ctx context.Context, p params) (string, error) {
	survivor, err := p.id("surviving_id")
	if err != nil {
		return "", err
	}
	retracted, err := p.ids("retracted_ids")
	if err != nil {
		return "", err
	}
	in := gateway.CombineTagsInput{SurvivingID: survivor, RetractedIDs: retracted}
	if err := h.gateway.CombineTags(ctx, in); err != nil {
		return "", err
	}
	return success, nil
}

func (h *WebServiceHandler) scaleSync(ctx context.Context, p params) (string, error) {
	var in gateway.ScalePayload
	if _, err := p.object("scale_data", &in, true); err != nil {
		return "", err
	}
	id, err := h.gateway.SyncScale(ctx, in)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (h *WebServiceHandler) activityWindowSync(ctx context.Context, p params) (string, error) {
	id, err := p.id("activity_id")
	if err != nil {
		return "", err
	}
	in := gateway.ActivityWindowInput{
		ActivityID: id,
		ModuleType: p.str("module_type"),
		Start:      p.str("start"),
		End:        p.str("end"),
	}
	if _, err := h.gateway.SyncActivityWindow(ctx, in); err != nil {
		return "", err
	}
	return success, nil
}

func (h *WebServiceHandler) settingsSync(ctx context.Context, p params) (string, error) {
	courseID, err := p.optInt("courseid")
	if err != nil {
		return "", err
	}
	in := gateway.SettingsInput{Group: p.str("group"), CourseID: courseID}
	if _, err := p.object("settings", &in.Settings, true); err != nil {
		return "", err
	}
	if _, err := h.gateway.SyncSettings(ctx, in); err != nil {
		return "", err
	}
	return success, nil
}

func (h *WebServiceHandler) enrol(op func(context.Context, gateway.EnrolPayload) error) wsFunc {
	return func(ctx context.Context, p params) (string, error) {
		var in gateway.EnrolPayload
		if _, err := p.object("enrol_data", &in, true); err != nil {
			return "", err
		}
		if err := op(ctx, in); err != nil {
			return "", err
		}
		return success, nil
	}
}

func (h *WebServiceHandler) byID(op func(context.Context, int64) error) wsFunc {
	return func(ctx context.Context, p params) (string, error) {
		id, err := p.id("id")
		if err != nil {
			return "", err
		}
		if err := op(ctx, id); err != nil {
			return "", err
		}
		return success, nil
	}
}

// ---------------------------------------------------------------------------
// Read functions
// ---------------------------------------------------------------------------

// journalEntry is the JSON shape of a journal record.
type journalEntry struct {
	ID         string         `json:"id"`
	Function   string         `json:"function"`
	EntityType string         `json:"entity_type"`
	EntityID   int64          `json:"entity_id"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  string         `json:"created_at"`
}

func (h *WebServiceHandler) journalList(ctx context.Context, p params) (string, error) {
	entityID, err := p.optInt("entity_id")
	if err != nil {
		return "", err
	}
	limit, err := p.optInt("limit")
	if err != nil {
		return "", err
	}

	records, err := h.analytics.History(ctx, domain.EntityType(p.str("entity_type")), entityID, int(limit))
	if err != nil {
		return "", err
	}

	out := make([]journalEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, journalEntry{
			ID:         rec.ID.String(),
			Function:   rec.Function,
			EntityType: string(rec.EntityType),
			EntityID:   rec.EntityID,
			Action:     string(rec.Action),
			Changes:    rec.Changes,
			CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return encode(out)
}

func (h *WebServiceHandler) courseGrade(ctx context.Context, p params) (string, error) {
	userID, courseID, err := idPair(p, "userid", "courseid")
	if err != nil {
		return "", err
	}
	grade, err := h.analytics.CourseGrade(ctx, userID, courseID)
	if err != nil {
		return "", err
	}
	if grade == nil {
		return "", nil
	}
	return encode(grade)
}

func (h *WebServiceHandler) completion(ctx context.Context, p params) (string, error) {
	userID, courseID, err := idPair(p, "userid", "courseid")
	if err != nil {
		return "", err
	}
	return h.analytics.CompletionPercentage(ctx, userID, courseID)
}

func (h *WebServiceHandler) attemptCount(ctx context.Context, p params) (string, error) {
	userID, quizID, err := idPair(p, "userid", "quizid")
	if err != nil {
		return "", err
	}
	n, err := h.analytics.AttemptCount(ctx, userID, quizID)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// categoryEntry is the JSON shape of a grade category.
type categoryEntry struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"courseid"`
	Parent      int64  `json:"parent"`
	Depth       int    `json:"depth"`
	Path        string `json:"path"`
	Fullname    string `json:"fullname"`
	Aggregation int    `json:"aggregation"`
	Hidden      int16  `json:"hidden"`
}

func (h *WebServiceHandler) gradeCategories(ctx context.Context, p params) (string, error) {
	courseID, err := p.id("courseid")
	if err != nil {
		return "", err
	}
	cats, err := h.analytics.GradeCategories(ctx, courseID)
	if err != nil {
		return "", err
	}

	out := make([]categoryEntry, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryEntry{
			ID:          c.ID,
			CourseID:    c.CourseID,
			Parent:      c.Parent,
			Depth:       c.Depth,
			Path:        c.Path,
			Fullname:    c.Fullname,
			Aggregation: c.Aggregation,
			Hidden:      c.Hidden,
		})
	}
	return encode(out)
}

func (h *WebServiceHandler) siteInfo(ctx context.Context, _ params) (string, error) {
	url, err := h.site.InstallURL(ctx)
	if err != nil {
		return "", err
	}
	return encode(struct {
		Version       string `json:"version"`
		LXPInstallURL string `json:"lxp_install_url"`
	}{h.version, url})
}

func idPair(p params, a, b string) (int64, int64, error) {
	x, err := p.id(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := p.id(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
