package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueName returns prefix joined with a random suffix.
func UniqueName(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

func now() int64 { return time.Now().Unix() }

// SeedCourse inserts a course with a unique shortname.
func SeedCourse(t *testing.T, pool *pgxpool.Pool) domain.Course {
	t.Helper()

	c := domain.Course{
		Fullname:     "Course " + uniqueSuffix(),
		Shortname:    UniqueName("C"),
		Format:       "topics",
		Visible:      1,
		TimeCreated:  now(),
		TimeModified: now(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO course (fullname, shortname, idnumber, format, visible, timecreated, timemodified)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		c.Fullname, c.Shortname, c.IDNumber, c.Format, c.Visible, c.TimeCreated, c.TimeModified,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse: %v", err)
	}
	return c
}

// SeedCategory inserts a grade category under parent (nil for a root) with a
// consistent path and depth.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, courseID int64, parent *domain.GradeCategory) domain.GradeCategory {
	t.Helper()
	ctx := context.Background()

	c := domain.GradeCategory{
		CourseID: courseID,
		Fullname: "Category " + uniqueSuffix(),
	}
	if parent != nil {
		c.Parent = parent.ID
	}
	err := pool.QueryRow(ctx,
		`INSERT INTO grade_categories (courseid, parent, fullname) VALUES ($1, $2, $3) RETURNING id`,
		c.CourseID, c.Parent, c.Fullname,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	c.Path, c.Depth = domain.Placement(c.ID, parent)
	if _, err := pool.Exec(ctx,
		`UPDATE grade_categories SET path = $2, depth = $3 WHERE id = $1`, c.ID, c.Path, c.Depth,
	); err != nil {
		t.Fatalf("testhelper: SeedCategory path: %v", err)
	}
	return c
}

// SeedGradeItem inserts a manual grade item in the given category.
func SeedGradeItem(t *testing.T, pool *pgxpool.Pool, courseID, categoryID int64, idnumber string) domain.GradeItem {
	t.Helper()

	cat := categoryID
	g := domain.GradeItem{
		CourseID:   courseID,
		CategoryID: &cat,
		ItemName:   "Item " + uniqueSuffix(),
		ItemType:   domain.ItemTypeManual,
		IDNumber:   idnumber,
		GradeType:  1,
		GradeMax:   100,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO grade_items (courseid, categoryid, itemname, itemtype, idnumber, gradetype, grademax)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		g.CourseID, g.CategoryID, g.ItemName, string(g.ItemType), g.IDNumber, g.GradeType, g.GradeMax,
	).Scan(&g.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedGradeItem: %v", err)
	}
	return g
}

// SeedTag inserts a tag with a unique name.
func SeedTag(t *testing.T, pool *pgxpool.Pool, standard bool) domain.Tag {
	t.Helper()

	tag := domain.Tag{Name: UniqueName("tag"), TimeCreated: now(), TimeModified: now()}
	tag.RawName = tag.Name
	if standard {
		tag.IsStandard = 1
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tag (name, rawname, isstandard, timecreated, timemodified)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		tag.Name, tag.RawName, tag.IsStandard, tag.TimeCreated, tag.TimeModified,
	).Scan(&tag.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}
	return tag
}

// SeedTagInstance links tagID to (itemType, itemID).
func SeedTagInstance(t *testing.T, pool *pgxpool.Pool, tagID int64, itemType string, itemID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tag_instance (tagid, itemtype, itemid, timecreated) VALUES ($1, $2, $3, $4)`,
		tagID, itemType, itemID, now(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTagInstance: %v", err)
	}
}

// SeedQuiz inserts a quiz with the given window.
func SeedQuiz(t *testing.T, pool *pgxpool.Pool, courseID, openAt, closeAt int64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO quiz (course, name, timeopen, timeclose) VALUES ($1, $2, $3, $4) RETURNING id`,
		courseID, "Quiz "+uniqueSuffix(), openAt, closeAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedQuiz: %v", err)
	}
	return id
}

// SeedUser inserts a user with a unique username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{Username: "user-" + suffix, Email: "user-" + suffix + "@example.com"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, email, timecreated) VALUES ($1, $2, $3) RETURNING id`,
		u.Username, u.Email, now(),
	).Scan(&u.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// CountRows returns the number of rows of table matching where.
// where is test-authored SQL, never user input.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE `+where, args...,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
