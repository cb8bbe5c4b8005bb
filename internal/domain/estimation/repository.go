// internal/domain/estimation/repository.go
package estimation

import "context"

// Repository is the persistence contract for price estimations.
type Repository interface {
	Insert(ctx context.Context, e *PriceEstimation) error

	// Update rewrites the row identified by e.ID. Missing id is
	// xerrors.ErrNotFound.
	Update(ctx context.Context, e *PriceEstimation) error

	// GetByIDWithCustomer returns the estimation joined with its customer;
	// the join is a LEFT JOIN so customer fields come back nil when the
	// customer row is gone.
	GetByIDWithCustomer(ctx context.Context, id string) (*WithCustomer, error)

	// List returns rows matching the filters, newest created first. The
	// full matching set is returned; there is no pagination.
	List(ctx context.Context, f ListFilters) ([]ListRow, error)
}
