package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// SyncSettings writes the known keys of a settings group and returns how many
// were written. course_grade settings are stored per course; a missing
// course is skipped.
func (s *Service) SyncSettings(ctx context.Context, input SettingsInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	group := domain.SettingsGroup(strings.TrimSpace(input.Group))
	if !group.IsValid() {
		return 0, domain.NewValidationError("group", "unknown settings group")
	}
	if group.PerCourse() && input.CourseID <= 0 {
		return 0, domain.NewValidationError("courseid", "required for "+group.String())
	}

	settings := domain.FilterSettings(group, input.values())
	if group == domain.SettingsGroupLeeloo {
		for _, st := range settings {
			if st.Name == domain.ConfigInstallURL && st.Value != "" {
				if err := validate.Var(st.Value, "url"); err != nil {
					return 0, domain.NewValidationError(domain.ConfigInstallURL, "invalid url")
				}
			}
		}
	}
	if len(settings) == 0 {
		return 0, nil
	}

	var written int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var courseID int64
		if group.PerCourse() {
			courseID = input.CourseID
			ok, err := s.courses.Exists(txCtx, courseID)
			if err != nil {
				return fmt.Errorf("check course: %w", err)
			}
			if !ok {
				s.log.WarnContext(ctx, "settings skipped: course not found", slog.Int64("course_id", courseID))
				return nil
			}
			if err := s.settings.UpsertCourse(txCtx, courseID, settings); err != nil {
				return fmt.Errorf("upsert course settings: %w", err)
			}
		} else if err := s.settings.UpsertConfig(txCtx, settings); err != nil {
			return fmt.Errorf("upsert config: %w", err)
		}
		written = len(settings)

		changes := make(map[string]any, len(settings)+1)
		for _, st := range settings {
			changes[st.Name] = st.Value
		}
		changes["group"] = group.String()
		return s.record(txCtx, domain.EntityTypeSetting, courseID, domain.JournalActionUpdate, changes)
	})
	if err != nil {
		return 0, err
	}

	if written > 0 && group == domain.SettingsGroupLeeloo && s.sitecfg != nil {
		s.sitecfg.Invalidate()
	}

	s.log.InfoContext(ctx, "settings synced",
		slog.String("group", group.String()),
		slog.Int64("course_id", input.CourseID),
		slog.Int("written", written),
	)
	return written, nil
}
