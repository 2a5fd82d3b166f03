package gateway

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// ---------------------------------------------------------------------------
// Lenient scalar decoding
// ---------------------------------------------------------------------------

// FlexInt decodes a JSON number, numeric string, bool or null into an int64.
// The LXP sends ids and flags either quoted or bare.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	raw, err := scalarText(b)
	if err != nil {
		return err
	}
	switch raw {
	case "", "null", "false":
		*f = 0
		return nil
	case "true":
		*f = 1
		return nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", raw)
	}
	*f = FlexInt(int64(fl))
	return nil
}

// Int64 returns the value, treating a nil pointer as 0.
func (f *FlexInt) Int64() int64 {
	if f == nil {
		return 0
	}
	return int64(*f)
}

// present reports whether an id field was supplied with a usable value.
func (f *FlexInt) present() bool { return f != nil && *f > 0 }

// FlexFloat decodes a JSON number, numeric string or null into a float64.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	raw, err := scalarText(b)
	if err != nil {
		return err
	}
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", raw)
	}
	*f = FlexFloat(v)
	return nil
}

// FlexString decodes a JSON string, number, bool or null into a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	raw, err := scalarText(b)
	if err != nil {
		return err
	}
	if raw == "null" && bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		raw = ""
	}
	*f = FlexString(raw)
	return nil
}

func (f FlexString) String() string { return strings.TrimSpace(string(f)) }

// scalarText returns the text of a JSON scalar with quotes removed.
func scalarText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return "", nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	case '{', '[':
		return "", errors.New("expected a scalar value")
	}
	return string(b), nil
}

// ---------------------------------------------------------------------------
// Payloads
// ---------------------------------------------------------------------------

// ---------------------------------------------------------------------------
// Partial updates
// ---------------------------------------------------------------------------

// Updatable payload fields are pointers: a field the caller left out (or sent
// as null) keeps the stored value.

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setInt[T ~int | ~int16 | ~int64](dst *T, src *FlexInt) {
	if src != nil {
		*dst = T(*src)
	}
}

func setFloat(dst *float64, src *FlexFloat) {
	if src != nil {
		*dst = float64(*src)
	}
}

// text returns the trimmed value of an optional string.
func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// CoursePayload is the course_data object. Fullname is required when the
// course is created.
type CoursePayload struct {
	ID        *FlexInt    `json:"id"`
	Category  *FlexInt    `json:"category"  validate:"omitempty,gte=0"`
	Fullname  *string     `json:"fullname"  validate:"omitempty,max=1333"`
	Shortname *string     `json:"shortname" validate:"omitempty,max=255"`
	IDNumber  *string     `json:"idnumber"  validate:"omitempty,max=100"`
	Summary   *string     `json:"summary"`
	Format    *string     `json:"format"    validate:"omitempty,max=21"`
	Visible   *FlexInt    `json:"visible"   validate:"omitempty,oneof=0 1"`
	StartDate *FlexString `json:"startdate"`
	EndDate   *FlexString `json:"enddate"`
}

// Validate checks field shapes.
func (p CoursePayload) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if (p.Fullname != nil || !p.ID.present()) && text(p.Fullname) == "" {
		return domain.NewValidationError("fullname", "required")
	}
	return nil
}

// apply copies the supplied fields onto c.
func (p CoursePayload) apply(c *domain.Course) error {
	if p.StartDate != nil {
		start, err := domain.ParseTimestamp(p.StartDate.String())
		if err != nil {
			return domain.NewValidationError("startdate", "unrecognized date")
		}
		c.StartDate = start
	}
	if p.EndDate != nil {
		end, err := domain.ParseTimestamp(p.EndDate.String())
		if err != nil {
			return domain.NewValidationError("enddate", "unrecognized date")
		}
		c.EndDate = end
	}
	setInt(&c.Category, p.Category)
	setString(&c.Fullname, p.Fullname)
	setString(&c.Shortname, p.Shortname)
	setString(&c.IDNumber, p.IDNumber)
	if p.Summary != nil {
		c.Summary = *p.Summary
	}
	if f := text(p.Format); f != "" {
		c.Format = f
	}
	setInt(&c.Visible, p.Visible)
	return nil
}

// CourseSyncInput bundles the parameters of course_sync.
type CourseSyncInput struct {
	Course   CoursePayload
	Category *CategoryPayload
	Item     *ItemPayload
}

// Validate checks the course and the optional nested payloads.
func (i CourseSyncInput) Validate() error {
	if err := i.Course.Validate(); err != nil {
		return err
	}
	if i.Category != nil {
		if err := i.Category.Validate(); err != nil {
			return err
		}
	}
	if i.Item != nil {
		if err := i.Item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CategoryPayload is the category_data object. A nil Parent leaves the
// placement unchanged; an explicit 0 moves the category to the root.
type CategoryPayload struct {
	ID                  *FlexInt     `json:"id"`
	CourseID            FlexInt      `json:"courseid"            validate:"gte=0"`
	Parent              *FlexInt     `json:"parent"              validate:"omitempty,gte=0"`
	Fullname            *string      `json:"fullname"            validate:"omitempty,max=255"`
	Aggregation         *FlexInt     `json:"aggregation"         validate:"omitempty,gte=0"`
	KeepHigh            *FlexInt     `json:"keephigh"            validate:"omitempty,gte=0"`
	DropLow             *FlexInt     `json:"droplow"             validate:"omitempty,gte=0"`
	AggregateOnlyGraded *FlexInt     `json:"aggregateonlygraded" validate:"omitempty,oneof=0 1"`
	Hidden              *FlexInt     `json:"hidden"              validate:"omitempty,gte=0"`
	Item                *ItemPayload `json:"item"`
}

// Validate checks field shapes.
func (p CategoryPayload) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.Item != nil {
		return p.Item.Validate()
	}
	return nil
}

// aggregationDefault is the host platform's "natural" aggregation.
const aggregationDefault = 13

func (p CategoryPayload) apply(c *domain.GradeCategory, now int64) {
	setString(&c.Fullname, p.Fullname)
	setInt(&c.Aggregation, p.Aggregation)
	setInt(&c.KeepHigh, p.KeepHigh)
	setInt(&c.DropLow, p.DropLow)
	setInt(&c.AggregateOnlyGraded, p.AggregateOnlyGraded)
	setInt(&c.Hidden, p.Hidden)
	c.TimeModified = now
}

func (p CategoryPayload) toCategory(courseID, now int64) domain.GradeCategory {
	c := domain.GradeCategory{
		CourseID:            courseID,
		Aggregation:         aggregationDefault,
		AggregateOnlyGraded: 1,
		TimeCreated:         now,
	}
	p.apply(&c, now)
	return c
}

// ItemPayload is the item_data object.
type ItemPayload struct {
	ID           *FlexInt   `json:"id"`
	CourseID     FlexInt    `json:"courseid"     validate:"gte=0"`
	CategoryID   *FlexInt   `json:"categoryid"   validate:"omitempty,gte=0"`
	ItemName     *string    `json:"itemname"     validate:"omitempty,max=255"`
	ItemType     string     `json:"itemtype"     validate:"omitempty,oneof=course category manual mod"`
	ItemModule   *string    `json:"itemmodule"   validate:"omitempty,max=50"`
	ItemInstance *FlexInt   `json:"iteminstance" validate:"omitempty,gte=0"`
	IDNumber     *string    `json:"idnumber"     validate:"omitempty,max=255"`
	GradeType    *FlexInt   `json:"gradetype"    validate:"omitempty,gte=0,lte=3"`
	GradeMax     *FlexFloat `json:"grademax"`
	GradeMin     *FlexFloat `json:"grademin"`
	ScaleID      *FlexInt   `json:"scaleid"      validate:"omitempty,gte=0"`
	SortOrder    *FlexInt   `json:"sortorder"`
	Hidden       *FlexInt   `json:"hidden"       validate:"omitempty,gte=0"`
	Locked       *FlexInt   `json:"locked"       validate:"omitempty,gte=0"`
}

// Validate checks field shapes. Bounds supplied only in part are checked
// against the stored item by checkGradeRange.
func (p ItemPayload) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.GradeMax != nil && p.GradeMin != nil && *p.GradeMax < *p.GradeMin {
		return domain.NewValidationError("grademax", "must not be below grademin")
	}
	return nil
}

// applyGrading copies the supplied grading fields shared by every item type.
// A blank itemname keeps the stored name; an explicit scaleid 0 clears it.
func (p ItemPayload) applyGrading(g *domain.GradeItem) {
	if name := text(p.ItemName); name != "" {
		g.ItemName = name
	}
	setString(&g.IDNumber, p.IDNumber)
	setInt(&g.GradeType, p.GradeType)
	setFloat(&g.GradeMax, p.GradeMax)
	setFloat(&g.GradeMin, p.GradeMin)
	if p.ScaleID != nil {
		g.ScaleID = optionalID(p.ScaleID)
	}
	setInt(&g.Hidden, p.Hidden)
	setInt(&g.Locked, p.Locked)
}

func checkGradeRange(g domain.GradeItem) error {
	if g.GradeMax < g.GradeMin {
		return domain.NewValidationError("grademax", "must not be below grademin")
	}
	return nil
}

func (p ItemPayload) toItem(courseID, now int64) domain.GradeItem {
	typ := domain.ItemType(p.ItemType)
	if typ == "" {
		typ = domain.ItemTypeManual
	}
	g := domain.GradeItem{
		CourseID:     courseID,
		CategoryID:   optionalID(p.CategoryID),
		ItemType:     typ,
		ItemModule:   text(p.ItemModule),
		ItemInstance: optionalID(p.ItemInstance),
		GradeType:    1,
		GradeMax:     100,
		TimeCreated:  now,
		TimeModified: now,
	}
	setInt(&g.SortOrder, p.SortOrder)
	p.applyGrading(&g)
	return g
}

// optionalID maps absent and zero ids to nil.
func optionalID(f *FlexInt) *int64 {
	if !f.present() {
		return nil
	}
	v := int64(*f)
	return &v
}

// TagPayload is one element of the tags array. ID is the LXP's own id.
type TagPayload struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"        validate:"required,max=100"`
	RawName     string     `json:"rawname"     validate:"max=100"`
	IsStandard  FlexInt    `json:"isstandard"  validate:"oneof=0 1"`
	Description FlexString `json:"description"`
}

func (p TagPayload) toTag() domain.Tag {
	return domain.Tag{
		Name:        p.Name,
		RawName:     p.RawName,
		IsStandard:  int16(p.IsStandard),
		Description: p.Description.String(),
	}
}

// TagsSyncInput holds the parameters of tags_sync.
type TagsSyncInput struct {
	ItemType string       `validate:"required,max=100"`
	ItemID   int64        `validate:"gt=0"`
	Tags     []TagPayload `validate:"dive"`
}

// Validate checks field shapes.
func (i TagsSyncInput) Validate() error { return validateStruct(i) }

// CombineTagsInput holds the parameters of tags_combine.
type CombineTagsInput struct {
	SurvivingID  int64   `validate:"gt=0"`
	RetractedIDs []int64 `validate:"required,dive,gt=0"`
}

// Validate checks field shapes.
func (i CombineTagsInput) Validate() error { return validateStruct(i) }

// ScalePayload is the scale_data object. Name and scale are required when
// the scale is created.
type ScalePayload struct {
	ID          *FlexInt    `json:"id"`
	CourseID    *FlexInt    `json:"courseid"    validate:"omitempty,gte=0"`
	UserID      *FlexInt    `json:"userid"      validate:"omitempty,gte=0"`
	Name        *string     `json:"name"        validate:"omitempty,max=255"`
	Scale       *string     `json:"scale"`
	Description *FlexString `json:"description"`
}

// Validate checks field shapes and that the scale lists at least one value.
func (p ScalePayload) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	create := !p.ID.present()
	if (p.Name != nil || create) && text(p.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	if (p.Scale != nil || create) && len(domain.Scale{Scale: text(p.Scale)}.Items()) == 0 {
		return domain.NewValidationError("scale", "must list at least one value")
	}
	return nil
}

// apply copies the supplied fields onto sc.
func (p ScalePayload) apply(sc *domain.Scale) {
	setInt(&sc.CourseID, p.CourseID)
	setInt(&sc.UserID, p.UserID)
	setString(&sc.Name, p.Name)
	if p.Scale != nil {
		sc.Scale = strings.Join(domain.Scale{Scale: *p.Scale}.Items(), ",")
	}
	if p.Description != nil {
		sc.Description = p.Description.String()
	}
}

// ActivityWindowInput holds the parameters of activity_window_sync.
type ActivityWindowInput struct {
	ActivityID int64  `validate:"gt=0"`
	ModuleType string `validate:"required"`
	Start      string
	End        string
}

// Validate checks field shapes.
func (i ActivityWindowInput) Validate() error { return validateStruct(i) }

// SettingsInput holds the parameters of settings_sync.
type SettingsInput struct {
	Group    string                `validate:"required"`
	Settings map[string]FlexString `validate:"required"`
	CourseID int64                 `validate:"gte=0"`
}

// Validate checks field shapes.
func (i SettingsInput) Validate() error { return validateStruct(i) }

func (i SettingsInput) values() map[string]string {
	out := make(map[string]string, len(i.Settings))
	for k, v := range i.Settings {
		out[strings.TrimSpace(k)] = v.String()
	}
	return out
}

// EnrolPayload is the enrol_data object.
type EnrolPayload struct {
	Username  string     `json:"username"  validate:"required_without=Email,max=100"`
	Email     string     `json:"email"     validate:"required_without=Username,omitempty,email"`
	CourseID  FlexInt    `json:"courseid"  validate:"gt=0"`
	Role      string     `json:"role"      validate:"max=100"`
	TimeStart FlexString `json:"timestart"`
	TimeEnd   FlexString `json:"timeend"`
	Status    FlexInt    `json:"status"    validate:"oneof=0 1"`
}

// Validate checks field shapes.
func (p EnrolPayload) Validate() error { return validateStruct(p) }

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and converts failures into a
// domain.ValidationError listing every offending field.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	errs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(errs)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "required"
	case "max":
		return "max " + fe.Param() + " characters"
	case "gt", "gte", "lte":
		return "out of range"
	case "oneof":
		return "must be one of " + fe.Param()
	case "email":
		return "invalid email"
	default:
		return "invalid (" + fe.Tag() + ")"
	}
}
