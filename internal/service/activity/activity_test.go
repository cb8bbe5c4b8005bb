package activity

import (
	"context"
	"testing"
	"time"

	"lucky-backoffice/internal/domain/activity"
	xerrors "lucky-backoffice/internal/pkg/errors"
	"lucky-backoffice/internal/pkg/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bangkok = time.FixedZone("ICT", 7*3600)

type memoryRepo struct {
	byID    map[string]activity.Activity
	inserts int
	updates int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[string]activity.Activity)}
}

func (r *memoryRepo) Insert(_ context.Context, a *activity.Activity) error {
	r.inserts++
	r.byID[a.ID] = *a
	return nil
}

func (r *memoryRepo) Update(_ context.Context, a *activity.Activity) error {
	r.updates++
	if _, ok := r.byID[a.ID]; !ok {
		return xerrors.ErrNotFound
	}
	r.byID[a.ID] = *a
	return nil
}

func (r *memoryRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memoryRepo) ListByCustomer(_ context.Context, customerID string) ([]activity.Activity, error) {
	out := []activity.Activity{}
	for _, a := range r.byID {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newService(repo activity.Repository) *ActivityService {
	return NewActivityService(repo, zap.NewNop(), bangkok)
}

func validRequest() *activity.SaveActivityRequest {
	return &activity.SaveActivityRequest{
		CustomerID:    "c6af75f091dc5011a1752baa1608b66b4934",
		ActivityType:  "โทรศัพท์",
		Title:         "นัดติดตามงาน",
		StartDatetime: "2026-08-28T10:00:00Z",
		Status:        "รอดำเนินการ",
		Priority:      "ปานกลาง",
	}
}

func TestCreateTwiceMakesTwoRows(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	first, err := svc.CreateActivity(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.CreateActivity(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Len(t, first.ID, ident.Size)
	assert.Len(t, second.ID, ident.Size)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, repo.inserts)
	assert.Len(t, repo.byID, 2)
}

func TestUpdateKeepsRowCount(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	created, err := svc.CreateActivity(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Title = "เปลี่ยนหัวข้อ"
	updated, err := svc.UpdateActivity(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Len(t, repo.byID, 1)
	assert.Equal(t, "เปลี่ยนหัวข้อ", repo.byID[created.ID].Title)
}

func TestUpdateMissingId(t *testing.T) {
	svc := newService(newMemoryRepo())

	_, err := svc.UpdateActivity(context.Background(), "f00df00df00df00df00df00df00df00df00d", validRequest())
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	_, err = svc.UpdateActivity(context.Background(), "", validRequest())
	assert.ErrorIs(t, err, xerrors.ErrValidation)
}

func TestSaveValidation(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	req := validRequest()
	req.Title = "  "
	_, err := svc.CreateActivity(context.Background(), req)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	req = validRequest()
	req.CustomerID = ""
	_, err = svc.CreateActivity(context.Background(), req)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	req = validRequest()
	req.StartDatetime = "not a date"
	_, err = svc.CreateActivity(context.Background(), req)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	assert.Zero(t, repo.inserts)
}

func TestDatetimeNormalization(t *testing.T) {
	svc := newService(newMemoryRepo())

	a, err := svc.CreateActivity(context.Background(), validRequest())
	require.NoError(t, err)

	// The UTC input ends up expressed in the configured zone, same instant.
	assert.Equal(t, bangkok, a.StartDatetime.Location())
	assert.Equal(t, 17, a.StartDatetime.Hour())
	assert.Nil(t, a.EndDatetime)

	req := validRequest()
	req.StartDatetime = "2026-08-28 09:30:00"
	req.EndDatetime = "2026-08-28T11:00:00Z"
	a, err = svc.CreateActivity(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 9, a.StartDatetime.Hour())
	require.NotNil(t, a.EndDatetime)
	assert.Equal(t, 18, a.EndDatetime.Hour())
}

func TestDeleteActivity(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)

	created, err := svc.CreateActivity(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteActivity(context.Background(), created.ID))

	listed, err := svc.ListActivities(context.Background(), created.CustomerID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.ErrorIs(t, svc.DeleteActivity(context.Background(), created.ID), xerrors.ErrNotFound)
}
