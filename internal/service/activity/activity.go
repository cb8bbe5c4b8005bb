// internal/service/activity/activity.go
package activity

import (
	"context"
	"strings"
	"time"

	"lucky-backoffice/internal/domain/activity"
	xerrors "lucky-backoffice/internal/pkg/errors"
	"lucky-backoffice/internal/pkg/ident"

	"go.uber.org/zap"
)

// Input datetimes arrive from the browser in a handful of shapes.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

type ActivityService struct {
	repo   activity.Repository
	logger *zap.Logger
	loc    *time.Location
}

func NewActivityService(repo activity.Repository, logger *zap.Logger, loc *time.Location) *ActivityService {
	return &ActivityService{repo: repo, logger: logger, loc: loc}
}

// CreateActivity inserts a new activity under a freshly generated id. The
// create/update split is deliberate: the handler maps id presence onto the
// two variants so each path stays testable on its own.
func (s *ActivityService) CreateActivity(ctx context.Context, req *activity.SaveActivityRequest) (*activity.Activity, error) {
	a, err := s.buildActivity(req)
	if err != nil {
		return nil, err
	}
	a.ID = ident.New()

	if err := s.repo.Insert(ctx, a); err != nil {
		s.logger.Error("failed to insert activity", zap.Error(err))
		return nil, err
	}
	s.logger.Info("activity created",
		zap.String("activity_id", a.ID),
		zap.String("customer_id", a.CustomerID),
	)
	return a, nil
}

// UpdateActivity rewrites an existing activity in place.
func (s *ActivityService) UpdateActivity(ctx context.Context, id string, req *activity.SaveActivityRequest) (*activity.Activity, error) {
	if id == "" {
		return nil, xerrors.Validation("activity id is required")
	}
	a, err := s.buildActivity(req)
	if err != nil {
		return nil, err
	}
	a.ID = id

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("activity updated", zap.String("activity_id", id))
	return a, nil
}

// DeleteActivity removes one activity; a missing id is a not-found outcome,
// not a silent success.
func (s *ActivityService) DeleteActivity(ctx context.Context, id string) error {
	if id == "" {
		return xerrors.Validation("activity id is required")
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("activity deleted", zap.String("activity_id", id))
	return nil
}

// ListActivities returns a customer's activities, newest start time first.
func (s *ActivityService) ListActivities(ctx context.Context, customerID string) ([]activity.Activity, error) {
	if customerID == "" {
		return nil, xerrors.Validation("customer id is required")
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *ActivityService) buildActivity(req *activity.SaveActivityRequest) (*activity.Activity, error) {
	if req.CustomerID == "" || strings.TrimSpace(req.Title) == "" {
		return nil, xerrors.Validation("customer id and title are required")
	}

	start, err := s.parseDatetime(req.StartDatetime)
	if err != nil {
		return nil, xerrors.Validation("start datetime is required in a recognized format")
	}

	var end *time.Time
	if req.EndDatetime != "" {
		t, err := s.parseDatetime(req.EndDatetime)
		if err != nil {
			return nil, xerrors.Validation("end datetime is not in a recognized format")
		}
		end = &t
	}

	return &activity.Activity{
		CustomerID:        req.CustomerID,
		ActivityType:      req.ActivityType,
		Title:             req.Title,
		Description:       req.Description,
		StartDatetime:     start,
		EndDatetime:       end,
		ReminderType:      req.ReminderType,
		ContactPerson:     req.ContactPerson,
		ResponsiblePerson: req.ResponsiblePerson,
		Status:            req.Status,
		Priority:          req.Priority,
	}, nil
}

// parseDatetime normalizes an input date-time string to the configured zone.
func (s *ActivityService) parseDatetime(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.ParseInLocation(layout, trimmed, s.loc)
		if err == nil {
			return t.In(s.loc), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
