package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// Enrol enrols a user in a course with a role, refreshing the window of an
// existing enrolment. Unknown users, courses or roles are skipped.
func (s *Service) Enrol(ctx context.Context, input EnrolPayload) error {
	if err := input.Validate(); err != nil {
		return err
	}
	start, err := domain.ParseTimestamp(input.TimeStart.String())
	if err != nil {
		return domain.NewValidationError("timestart", "unrecognized date")
	}
	end, err := domain.ParseTimestamp(input.TimeEnd.String())
	if err != nil {
		return domain.NewValidationError("timeend", "unrecognized date")
	}
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = domain.DefaultRole
	}
	courseID := int64(input.CourseID)

	var enrolled domain.Enrolment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.enrol.FindUser(txCtx, strings.TrimSpace(input.Username), strings.TrimSpace(input.Email))
		if isNotFound(err) {
			s.log.WarnContext(ctx, "enrolment skipped: user not found", slog.String("username", input.Username))
			return nil
		}
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		ok, err := s.courses.Exists(txCtx, courseID)
		if err != nil {
			return fmt.Errorf("check course: %w", err)
		}
		if !ok {
			s.log.WarnContext(ctx, "enrolment skipped: course not found", slog.Int64("course_id", courseID))
			return nil
		}

		roleID, err := s.enrol.RoleID(txCtx, role)
		if isNotFound(err) {
			s.log.WarnContext(ctx, "enrolment skipped: role not found", slog.String("role", role))
			return nil
		}
		if err != nil {
			return fmt.Errorf("resolve role: %w", err)
		}

		e := domain.Enrolment{
			UserID:    user.ID,
			CourseID:  courseID,
			RoleID:    roleID,
			TimeStart: start,
			TimeEnd:   end,
			Status:    int16(input.Status),
		}
		now := s.unix()
		if err := s.enrol.UpsertEnrolment(txCtx, e, now); err != nil {
			return fmt.Errorf("upsert enrolment: %w", err)
		}
		if err := s.enrol.AssignRole(txCtx, e, now); err != nil {
			return fmt.Errorf("assign role: %w", err)
		}
		enrolled = e

		return s.record(txCtx, domain.EntityTypeEnrolment, user.ID, domain.JournalActionLink, map[string]any{
			"courseid":  courseID,
			"role":      role,
			"timestart": start,
			"timeend":   end,
		})
	})
	if err != nil {
		return err
	}

	if enrolled.UserID != 0 {
		s.log.InfoContext(ctx, "user enrolled",
			slog.Int64("user_id", enrolled.UserID),
			slog.Int64("course_id", courseID),
			slog.String("role", role),
		)
	}
	return nil
}

// Unenrol removes a user's enrolment and role assignments in a course.
// Unknown users and missing enrolments are skipped.
func (s *Service) Unenrol(ctx context.Context, input EnrolPayload) error {
	if err := input.Validate(); err != nil {
		return err
	}
	courseID := int64(input.CourseID)

	var userID int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.enrol.FindUser(txCtx, strings.TrimSpace(input.Username), strings.TrimSpace(input.Email))
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		removed, err := s.enrol.DeleteEnrolment(txCtx, user.ID, courseID)
		if err != nil {
			return fmt.Errorf("delete enrolment: %w", err)
		}
		roles, err := s.enrol.UnassignRoles(txCtx, user.ID, courseID)
		if err != nil {
			return fmt.Errorf("unassign roles: %w", err)
		}
		if !removed && roles == 0 {
			return nil
		}
		userID = user.ID

		return s.record(txCtx, domain.EntityTypeEnrolment, user.ID, domain.JournalActionDelete, map[string]any{
			"courseid": courseID,
			"roles":    roles,
		})
	})
	if err != nil {
		return err
	}

	if userID != 0 {
		s.log.InfoContext(ctx, "user unenrolled", slog.Int64("user_id", userID), slog.Int64("course_id", courseID))
	}
	return nil
}
