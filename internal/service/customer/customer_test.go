package customer

import (
	"context"
	"testing"

	"lucky-backoffice/internal/domain/customer"
	xerrors "lucky-backoffice/internal/pkg/errors"
	"lucky-backoffice/internal/pkg/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryRepo is a lightweight in-memory customer repository for tests.
type memoryRepo struct {
	byID    map[string]customer.Customer
	writes  int
	deletes int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[string]customer.Customer)}
}

func (r *memoryRepo) CreateWithContacts(_ context.Context, c *customer.Customer) error {
	r.writes++
	r.byID[c.ID] = *c
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*customer.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	clone := c
	return &clone, nil
}

func (r *memoryRepo) List(_ context.Context) ([]customer.Customer, error) {
	out := []customer.Customer{}
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryRepo) DeleteByID(_ context.Context, id string) error {
	r.deletes++
	if _, ok := r.byID[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newService(repo customer.Repository) *CustomerService {
	return NewCustomerService(repo, zap.NewNop())
}

func TestCreateCustomerValidation(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	_, err := svc.CreateCustomer(context.Background(), &customer.CreateCustomerRequest{
		CompanyName: "Acme Co",
	})
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	_, err = svc.CreateCustomer(context.Background(), &customer.CreateCustomerRequest{
		ContactName: "Somchai",
	})
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	// Validation failures never reach the store.
	assert.Zero(t, repo.writes)
}

func TestCreateCustomerAssignsIds(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	resp, err := svc.CreateCustomer(context.Background(), &customer.CreateCustomerRequest{
		CompanyName:  "Acme Co",
		ContactName:  "Somchai",
		PhoneNumbers: []string{"0811111111"},
		AdditionalContacts: []customer.ContactInput{
			{ContactName: "Somsri", PhoneNumber: "022222222"},
			{ContactName: "Wichai"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.ID, ident.Size)

	stored, err := svc.GetCustomer(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"0811111111"}, stored.PhoneNumbers)
	require.Len(t, stored.AdditionalContacts, 2)

	ids := map[string]struct{}{resp.ID: {}}
	for _, ct := range stored.AdditionalContacts {
		assert.Len(t, ct.ID, ident.Size)
		assert.Equal(t, resp.ID, ct.CustomerID)
		_, dup := ids[ct.ID]
		assert.False(t, dup, "contact id must be generated independently")
		ids[ct.ID] = struct{}{}
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := newService(newMemoryRepo())

	_, err := svc.GetCustomer(context.Background(), "missing")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	_, err = svc.GetCustomer(context.Background(), "")
	assert.ErrorIs(t, err, xerrors.ErrValidation)
}

func TestDeleteCustomer(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	resp, err := svc.CreateCustomer(context.Background(), &customer.CreateCustomerRequest{
		CompanyName: "Acme Co",
		ContactName: "Somchai",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(context.Background(), resp.ID))
	_, err = svc.GetCustomer(context.Background(), resp.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), resp.ID), xerrors.ErrNotFound)
}
