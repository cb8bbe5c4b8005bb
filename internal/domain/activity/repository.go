// internal/domain/activity/repository.go
package activity

import "context"

// Repository is the persistence contract for customer activities. Insert and
// Update are deliberately separate so the two upsert paths stay testable on
// their own.
type Repository interface {
	Insert(ctx context.Context, a *Activity) error

	// Update rewrites the row identified by a.ID. Missing id is
	// xerrors.ErrNotFound.
	Update(ctx context.Context, a *Activity) error

	// DeleteByID removes one activity. Missing id is xerrors.ErrNotFound.
	DeleteByID(ctx context.Context, id string) error

	// ListByCustomer returns a customer's activities, newest start time
	// first.
	ListByCustomer(ctx context.Context, customerID string) ([]Activity, error)
}
