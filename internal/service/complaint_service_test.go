package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajmeruva0786/DigiGov10/internal/model"
	"github.com/surajmeruva0786/DigiGov10/internal/service"
	"github.com/surajmeruva0786/DigiGov10/internal/store"
)

func newTestService(t *testing.T) *service.ComplaintService {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	svc, err := service.NewComplaintService(context.Background(), st, nil)
	require.NoError(t, err)
	return svc
}

var idFormat = regexp.MustCompile(`^#[1-9]\d{4}$`)

// TestSubmitCreatesPendingComplaint covers the water-leak submission flow:
// one new entry, status pending, counts move by one.
func TestSubmitCreatesPendingComplaint(t *testing.T) {
	svc := newTestService(t)
	before := svc.Counts()

	c, err := svc.Submit(context.Background(), "Water leak", model.SectorWater, "Leaking pipe", "")
	require.NoError(t, err)

	assert.Regexp(t, idFormat, c.ID)
	assert.Equal(t, model.StatusPending, c.Status)
	assert.Equal(t, service.AnonymousSubmitter, c.UserID)
	assert.False(t, c.Date.IsZero())

	after := svc.Counts()
	assert.Equal(t, before.Pending+1, after.Pending)
	assert.Equal(t, before.Total+1, after.Total)
}

// TestSubmitPersists verifies a fresh service over the same store sees the
// submitted complaint.
func TestSubmitPersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)

	svc, err := service.NewComplaintService(ctx, st, nil)
	require.NoError(t, err)
	c, err := svc.Submit(ctx, "Water leak", model.SectorWater, "Leaking pipe", "9876543210")
	require.NoError(t, err)

	reopened, err := service.NewComplaintService(ctx, st, nil)
	require.NoError(t, err)
	got, ok := reopened.ByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, "9876543210", got.UserID)
	assert.Equal(t, model.StatusPending, got.Status)
}

// TestUpdateStatusTransition covers pending -> resolved on a known id.
func TestUpdateStatusTransition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)

	before := svc.Counts()
	found, err := svc.UpdateStatus(ctx, "#12345", model.StatusResolved)
	require.NoError(t, err)
	assert.True(t, found)

	got, ok := svc.ByID("#12345")
	require.True(t, ok)
	assert.Equal(t, model.StatusResolved, got.Status)

	after := svc.Counts()
	assert.Equal(t, before.Resolved+1, after.Resolved)
	assert.Equal(t, before.Pending-1, after.Pending)
	assert.Equal(t, before.Total, after.Total)
}

// TestUpdateStatusUnknownID verifies an unknown id reports not-found and
// leaves the collection unchanged.
func TestUpdateStatusUnknownID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)
	before := svc.All()

	found, err := svc.UpdateStatus(ctx, "#99999", model.StatusResolved)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, svc.All())
}

// TestUpdateStatusBackwardTransition: transitions are unconstrained, so
// resolved -> pending is allowed.
func TestUpdateStatusBackwardTransition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)

	found, err := svc.UpdateStatus(ctx, "#12344", model.StatusPending)
	require.NoError(t, err)
	assert.True(t, found)
	got, _ := svc.ByID("#12344")
	assert.Equal(t, model.StatusPending, got.Status)
}

// TestAllIsIdempotentSnapshot verifies two reads without mutation are equal
// in content and order, and that mutating a snapshot does not leak back.
func TestAllIsIdempotentSnapshot(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SeedSampleData(context.Background())
	require.NoError(t, err)

	first := svc.All()
	second := svc.All()
	assert.Equal(t, first, second)

	first[0].Subject = "mutated"
	assert.NotEqual(t, first[0].Subject, svc.All()[0].Subject)
}

// TestInsertionOrderPreserved verifies newest complaints append last.
func TestInsertionOrderPreserved(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.Submit(ctx, "first", model.SectorGeneral, "d", "")
	require.NoError(t, err)
	b, err := svc.Submit(ctx, "second", model.SectorGeneral, "d", "")
	require.NoError(t, err)

	all := svc.All()
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)
}

// TestCountsInvariant: total == pending + in-progress + resolved across a
// series of mutations.
func TestCountsInvariant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)

	c, err := svc.Submit(ctx, "Noise complaint", model.SectorGeneral, "Loudspeakers at night", "")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, c.ID, model.StatusInProgress)
	require.NoError(t, err)

	counts := svc.Counts()
	assert.Equal(t, counts.Total, counts.Pending+counts.InProgress+counts.Resolved)
	assert.Equal(t, len(svc.All()), counts.Total)
}

// TestSeedSampleDataOnlyWhenEmpty verifies seeding is a no-op on a non-empty
// collection.
func TestSeedSampleDataOnlyWhenEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	n, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, svc.All(), 3)
}

// failingStore rejects every save; loads succeed empty.
type failingStore struct{}

func (failingStore) Load(context.Context, string, any) error { return nil }
func (failingStore) Save(context.Context, string, any) error { return errors.New("quota exceeded") }

// TestSubmitRollsBackOnSaveFailure verifies a failed persist aborts the
// operation without leaving the appended complaint in memory.
func TestSubmitRollsBackOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	svc, err := service.NewComplaintService(ctx, failingStore{}, nil)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "Water leak", model.SectorWater, "Leaking pipe", "")
	require.Error(t, err)
	assert.Empty(t, svc.All())
	assert.Zero(t, svc.Counts().Total)
}

// saveOnceStore accepts the first save and fails the rest, to drive the
// status-restore path.
type saveOnceStore struct{ saves int }

func (s *saveOnceStore) Load(context.Context, string, any) error { return nil }
func (s *saveOnceStore) Save(context.Context, string, any) error {
	s.saves++
	if s.saves > 1 {
		return errors.New("quota exceeded")
	}
	return nil
}

// TestUpdateStatusRestoresPriorStatusOnSaveFailure verifies the prior status
// survives a failed persist.
func TestUpdateStatusRestoresPriorStatusOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	svc, err := service.NewComplaintService(ctx, &saveOnceStore{}, nil)
	require.NoError(t, err)

	c, err := svc.Submit(ctx, "Water leak", model.SectorWater, "Leaking pipe", "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, c.ID, model.StatusResolved)
	require.Error(t, err)
	got, ok := svc.ByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, model.StatusPending, got.Status)
}

// TestByStatusFilter verifies the status filter and the "all" passthrough.
func TestByStatusFilter(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SeedSampleData(context.Background())
	require.NoError(t, err)

	pending := svc.ByStatus("pending")
	require.Len(t, pending, 1)
	assert.Equal(t, "#12345", pending[0].ID)

	assert.Len(t, svc.ByStatus("all"), 3)
	assert.Len(t, svc.ByStatus(""), 3)
	assert.Empty(t, svc.ByStatus("nonexistent"))
}
