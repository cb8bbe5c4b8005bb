// internal/domain/customer/repository.go
package customer

import "context"

// Repository is the persistence contract for customers and their contacts.
type Repository interface {
	// CreateWithContacts inserts the customer row and every contact in
	// c.AdditionalContacts as one atomic sequence: either all rows land
	// or none do.
	CreateWithContacts(ctx context.Context, c *Customer) error

	// GetByID returns the customer with its contacts hydrated, or
	// xerrors.ErrNotFound.
	GetByID(ctx context.Context, id string) (*Customer, error)

	// List returns all customers, newest created first, without contacts.
	List(ctx context.Context) ([]Customer, error)

	// DeleteByID removes the customer and its contacts in one atomic
	// sequence. Missing id is xerrors.ErrNotFound.
	DeleteByID(ctx context.Context, id string) error
}
