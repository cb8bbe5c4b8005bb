package estimation

import (
	"context"
	"testing"

	"lucky-backoffice/internal/domain/estimation"
	xerrors "lucky-backoffice/internal/pkg/errors"
	"lucky-backoffice/internal/pkg/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRepo struct {
	byID     map[string]estimation.PriceEstimation
	listRows []estimation.ListRow
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[string]estimation.PriceEstimation)}
}

func (r *memoryRepo) Insert(_ context.Context, e *estimation.PriceEstimation) error {
	r.byID[e.ID] = *e
	return nil
}

func (r *memoryRepo) Update(_ context.Context, e *estimation.PriceEstimation) error {
	if _, ok := r.byID[e.ID]; !ok {
		return xerrors.ErrNotFound
	}
	r.byID[e.ID] = *e
	return nil
}

func (r *memoryRepo) GetByIDWithCustomer(_ context.Context, id string) (*estimation.WithCustomer, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return &estimation.WithCustomer{
		PriceEstimation: e,
		PhoneNumbers:    []string{},
		Emails:          []string{},
	}, nil
}

func (r *memoryRepo) List(_ context.Context, _ estimation.ListFilters) ([]estimation.ListRow, error) {
	return r.listRows, nil
}

func newService(repo estimation.Repository) *EstimationService {
	return NewEstimationService(repo, zap.NewNop())
}

func validRequest() *estimation.SaveEstimationRequest {
	return &estimation.SaveEstimationRequest{
		CustomerID:   "c6af75f091dc5011a1752baa1608b66b4934",
		SalesOwnerID: "sales-01",
		EstimateDate: "2026-08-28",
		JobName:      "เหรียญวิ่งมาราธอน",
		ProductType:  "เหรียญรางวัล",
		Quantity:     "150",
		Budget:       "2500.50",
	}
}

func TestCreateCoercesNumbers(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	resp, err := svc.CreateEstimation(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.ID, ident.Size)

	stored := repo.byID[resp.ID]
	assert.Equal(t, 150, stored.Quantity)
	assert.Equal(t, 2500.5, stored.Budget)
	assert.Equal(t, estimation.StatusAwaitingProcurement, stored.Status)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := newService(newMemoryRepo())

	req := validRequest()
	req.Status = "ไม่มีสถานะนี้"
	_, err := svc.CreateEstimation(context.Background(), req)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	req = validRequest()
	req.CustomerID = ""
	_, err = svc.CreateEstimation(context.Background(), req)
	assert.ErrorIs(t, err, xerrors.ErrValidation)
}

func TestUpdateBranching(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	created, err := svc.CreateEstimation(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Status = string(estimation.StatusApproved)
	req.Quantity = "200"
	updated, err := svc.UpdateEstimation(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Len(t, repo.byID, 1)
	assert.Equal(t, estimation.StatusApproved, repo.byID[created.ID].Status)
	assert.Equal(t, 200, repo.byID[created.ID].Quantity)

	_, err = svc.UpdateEstimation(context.Background(), "0000000000000000000000000000000000aa", validRequest())
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestGetEstimationValidation(t *testing.T) {
	svc := newService(newMemoryRepo())

	_, err := svc.GetEstimation(context.Background(), "")
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	_, err = svc.GetEstimation(context.Background(), "missing")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestListProjectionFallbacks(t *testing.T) {
	company := "Acme Co"
	contact := "Somchai"
	line := "@acme"

	repo := newMemoryRepo()
	repo.listRows = []estimation.ListRow{
		{ID: "a", Budget: 2500.5, Quantity: 150, CompanyName: &company, ContactName: &contact, LineID: &line},
		{ID: "b", CompanyName: nil, ContactName: &contact},
		{ID: "c"}, // customer deleted since
	}
	svc := newService(repo)

	items, err := svc.ListEstimations(context.Background(), estimation.ListFilters{})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Acme Co", items[0].CustomerName)
	assert.Equal(t, "@acme", items[0].LineName)
	assert.Equal(t, 2500.5, items[0].Price)
	assert.Equal(t, 150, items[0].Quantity)

	assert.Equal(t, "Somchai", items[1].CustomerName)
	assert.Equal(t, "Somchai", items[1].LineName)

	assert.Equal(t, "Unknown Customer", items[2].CustomerName)
	assert.Equal(t, "Unknown Customer", items[2].LineName)
}
