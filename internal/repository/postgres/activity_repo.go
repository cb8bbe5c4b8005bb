// internal/repository/postgres/activity_repo.go
package postgres

import (
	"context"
	"fmt"

	"lucky-backoffice/internal/domain/activity"
	xerrors "lucky-backoffice/internal/pkg/errors"
)

type ActivityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Insert writes a new activity row under the id already set on a.
func (r *ActivityRepository) Insert(ctx context.Context, a *activity.Activity) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO customer_admin_activities (
			id, customer_id, activity_type, title, description,
			start_datetime, end_datetime, reminder_type,
			contact_person, responsible_person, status, priority
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Pool().Exec(ctx, query,
		a.ID, a.CustomerID, a.ActivityType, a.Title, a.Description,
		a.StartDatetime, a.EndDatetime, a.ReminderType,
		a.ContactPerson, a.ResponsiblePerson, a.Status, a.Priority,
	)
	if err != nil {
		return xerrors.Store(fmt.Errorf("failed to insert activity: %w", err))
	}
	return nil
}

// Update rewrites the activity row in place. The owning customer never
// changes on update.
func (r *ActivityRepository) Update(ctx context.Context, a *activity.Activity) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query := `
		UPDATE customer_admin_activities SET
			activity_type = $1, title = $2, description = $3,
			start_datetime = $4, end_datetime = $5, reminder_type = $6,
			contact_person = $7, responsible_person = $8, status = $9, priority = $10
		WHERE id = $11
	`
	result, err := r.db.Pool().Exec(ctx, query,
		a.ActivityType, a.Title, a.Description,
		a.StartDatetime, a.EndDatetime, a.ReminderType,
		a.ContactPerson, a.ResponsiblePerson, a.Status, a.Priority,
		a.ID,
	)
	if err != nil {
		return xerrors.Store(fmt.Errorf("failed to update activity: %w", err))
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// DeleteByID removes one activity; deleting an unknown id is not a success.
func (r *ActivityRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	result, err := r.db.Pool().Exec(ctx, `DELETE FROM customer_admin_activities WHERE id = $1`, id)
	if err != nil {
		return xerrors.Store(fmt.Errorf("failed to delete activity: %w", err))
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// ListByCustomer returns the customer's activities, newest start time first.
func (r *ActivityRepository) ListByCustomer(ctx context.Context, customerID string) ([]activity.Activity, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, customer_id, activity_type, title, description,
		       start_datetime, end_datetime, reminder_type,
		       contact_person, responsible_person, status, priority, created_at
		FROM customer_admin_activities
		WHERE customer_id = $1
		ORDER BY start_datetime DESC
	`
	rows, err := r.db.Pool().Query(ctx, query, customerID)
	if err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to list activities: %w", err))
	}
	defer rows.Close()

	activities := []activity.Activity{}
	for rows.Next() {
		var a activity.Activity
		if err := rows.Scan(
			&a.ID, &a.CustomerID, &a.ActivityType, &a.Title, &a.Description,
			&a.StartDatetime, &a.EndDatetime, &a.ReminderType,
			&a.ContactPerson, &a.ResponsiblePerson, &a.Status, &a.Priority, &a.CreatedAt,
		); err != nil {
			return nil, xerrors.Store(fmt.Errorf("failed to scan activity: %w", err))
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Store(fmt.Errorf("failed to read activities: %w", err))
	}

	return activities, nil
}
