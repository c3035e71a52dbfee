package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iosrepair/board-repair-manager/internal/model"
)

type fakeGateway struct {
	err       error
	submitted []model.ServiceOrder
}

func (g *fakeGateway) Submit(_ context.Context, o model.ServiceOrder) error {
	g.submitted = append(g.submitted, o)
	return g.err
}

// fakeClock advances one second per reading so every created order is newer.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestStore(seed bool) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)}
	return NewStore(StoreConfig{SeedDemoOrders: seed, Now: clock.Now}), clock
}

func validDraft() model.OrderDraft {
	return model.OrderDraft{
		DeviceModel:       "iPhone 13",
		RepairType:        "Troca de bateria",
		DefectDescription: "Não carrega",
	}
}

func TestStore_InitializeSeeds(t *testing.T) {
	s, _ := newTestStore(true)
	s.Initialize("owner-1")

	orders := s.List()
	require.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0].ID)
	assert.Equal(t, model.StatusInProgress, orders[0].Status)
	assert.Equal(t, "2", orders[1].ID)
	assert.Equal(t, model.StatusCompleted, orders[1].Status)
	for _, o := range orders {
		assert.Equal(t, "owner-1", o.UserID)
	}
}

func TestStore_InitializeWithoutSeed(t *testing.T) {
	s, _ := newTestStore(false)
	s.Initialize("owner-1")
	assert.Empty(t, s.List())
	assert.Equal(t, model.OrderSummary{}, s.Summarize())
}

func TestStore_InitializeReplacesContent(t *testing.T) {
	s, _ := newTestStore(true)
	s.Initialize("owner-1")
	_, err := s.Create(context.Background(), validDraft(), "owner-1")
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	s.Initialize("owner-2")
	orders := s.List()
	require.Len(t, orders, 2)
	assert.Equal(t, "owner-2", orders[0].UserID)
}

func TestStore_CreateDerivesFields(t *testing.T) {
	s, _ := newTestStore(false)
	s.Initialize("owner-1")

	draft := validDraft()
	draft.Notes = "Cliente deixou capinha"
	o, err := s.Create(context.Background(), draft, "owner-1")
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "owner-1", o.UserID)
	assert.Equal(t, model.StatusPending, o.Status)
	assert.Equal(t, DefaultWarrantyTerms, o.WarrantyTerms)
	require.NotNil(t, o.EstimatedCompletion)
	assert.Equal(t, o.CreatedAt.Add(7*24*time.Hour), *o.EstimatedCompletion)
	assert.Nil(t, o.CompletedAt)
	assert.Equal(t, "Cliente deixou capinha", o.Notes)
	assert.Equal(t, draft.DeviceModel, o.DeviceModel)
	assert.Equal(t, draft.RepairType, o.RepairType)
	assert.Equal(t, draft.DefectDescription, o.DefectDescription)
}

func TestStore_CreateRejectsInvalidDrafts(t *testing.T) {
	cases := map[string]func(*model.OrderDraft){
		"deviceModel":       func(d *model.OrderDraft) { d.DeviceModel = "Galaxy S23" },
		"repairType":        func(d *model.OrderDraft) { d.RepairType = "Lavagem" },
		"defectDescription": func(d *model.OrderDraft) { d.DefectDescription = "  " },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			s, _ := newTestStore(true)
			s.Initialize("owner-1")

			d := validDraft()
			mutate(&d)
			_, err := s.Create(context.Background(), d, "owner-1")

			var ve *model.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, field, ve.Field)
			assert.Equal(t, 2, s.Len(), "a rejected draft must not mutate the collection")
		})
	}
}

func TestStore_CreateGatewayFailureLeavesCollection(t *testing.T) {
	gw := &fakeGateway{err: errors.New("backend unavailable")}
	s := NewStore(StoreConfig{Gateway: gw, SeedDemoOrders: true})
	s.Initialize("owner-1")

	_, err := s.Create(context.Background(), validDraft(), "owner-1")
	require.Error(t, err)
	assert.False(t, model.IsValidation(err))
	assert.Len(t, gw.submitted, 1)
	assert.Equal(t, 2, s.Len())
}

func TestStore_CreateHonoursCancelledContext(t *testing.T) {
	s := NewStore(StoreConfig{Gateway: NewMockGateway(time.Hour)})
	s.Initialize("owner-1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Create(ctx, validDraft(), "owner-1")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ListIsMostRecentFirstAfterSeed(t *testing.T) {
	s, _ := newTestStore(true)
	s.Initialize("owner-1")

	var created []string
	for i := 0; i < 5; i++ {
		o, err := s.Create(context.Background(), validDraft(), "owner-1")
		require.NoError(t, err)
		created = append(created, o.ID)
	}

	orders := s.List()
	require.Len(t, orders, 7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, created[4-i], orders[i].ID)
	}
	for i := 1; i < 5; i++ {
		assert.True(t, orders[i-1].CreatedAt.After(orders[i].CreatedAt))
	}
	assert.Equal(t, "1", orders[5].ID)
	assert.Equal(t, "2", orders[6].ID)
}

func TestStore_ListReturnsCopies(t *testing.T) {
	s, _ := newTestStore(true)
	s.Initialize("owner-1")

	orders := s.List()
	orders[0].Status = model.StatusCancelled
	*orders[0].EstimatedCompletion = time.Time{}

	fresh := s.List()
	assert.Equal(t, model.StatusInProgress, fresh[0].Status)
	assert.False(t, fresh[0].EstimatedCompletion.IsZero())
}

func TestStore_Get(t *testing.T) {
	s, _ := newTestStore(true)
	s.Initialize("owner-1")

	o, err := s.Create(context.Background(), validDraft(), "owner-1")
	require.NoError(t, err)

	got, err := s.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, got)

	_, err = s.Get("missing")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestStore_SummarizeMatchesList(t *testing.T) {
	s, _ := newTestStore(true)
	s.Initialize("owner-1")
	for i := 0; i < 3; i++ {
		_, err := s.Create(context.Background(), validDraft(), "owner-1")
		require.NoError(t, err)
	}

	orders := s.List()
	summary := s.Summarize()

	sum := 0
	for _, status := range model.Statuses {
		n := 0
		for _, o := range orders {
			if o.Status == status {
				n++
			}
		}
		assert.Equal(t, n, summary.Count(status), status)
		sum += summary.Count(status)
	}
	assert.Equal(t, len(orders), sum)
	assert.Equal(t, len(orders), summary.Total)
}

func TestStore_SeedThenCreateScenario(t *testing.T) {
	s, _ := newTestStore(true)
	s.Initialize("owner-1")

	_, err := s.Create(context.Background(), model.OrderDraft{
		DeviceModel:       "iPhone 13",
		RepairType:        "Troca de bateria",
		DefectDescription: "Não carrega",
	}, "owner-1")
	require.NoError(t, err)

	orders := s.List()
	require.Len(t, orders, 3)
	assert.Equal(t, model.StatusPending, orders[0].Status)
	assert.Equal(t, model.OrderSummary{Pending: 1, InProgress: 1, Completed: 1, Cancelled: 0, Total: 3}, s.Summarize())
}
