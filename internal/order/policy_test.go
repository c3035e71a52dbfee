package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iosrepair/board-repair-manager/internal/catalog"
	"github.com/iosrepair/board-repair-manager/internal/model"
)

func TestPolicy_ValidateEveryCatalogEntry(t *testing.T) {
	p := NewPolicy(nil)
	for _, device := range catalog.DefaultDeviceModels {
		for _, repair := range catalog.DefaultRepairTypes {
			err := p.Validate(model.OrderDraft{DeviceModel: device, RepairType: repair, DefectDescription: "x"})
			require.NoError(t, err, "%s / %s", device, repair)
		}
	}
}

func TestPolicy_CustomCatalog(t *testing.T) {
	p := NewPolicy(catalog.New([]string{"iPhone 16"}, []string{"Troca de tampa"}))

	require.NoError(t, p.Validate(model.OrderDraft{DeviceModel: "iPhone 16", RepairType: "Troca de tampa", DefectDescription: "x"}))
	assert.True(t, model.IsValidation(p.Validate(validDraft())))
}

func TestPolicy_NewOrder(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
	o := NewPolicy(nil).NewOrder("100", "owner", validDraft(), now)

	assert.Equal(t, "100", o.ID)
	assert.Equal(t, model.StatusPending, o.Status)
	assert.Equal(t, now, o.CreatedAt)
	assert.Equal(t, time.Date(2025, 1, 17, 9, 30, 0, 0, time.UTC), *o.EstimatedCompletion)
	assert.Equal(t, "90 dias para defeitos de fabricação", o.WarrantyTerms)
	assert.Empty(t, o.Notes)
}

func TestSeedOrders(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	orders := SeedOrders("owner", now)
	require.Len(t, orders, 2)

	inProgress := orders[0]
	assert.Equal(t, "iPhone 14 Pro Max", inProgress.DeviceModel)
	assert.Equal(t, "Troca de display", inProgress.RepairType)
	assert.Equal(t, now.Add(-48*time.Hour), inProgress.CreatedAt)
	assert.Equal(t, now.Add(72*time.Hour), *inProgress.EstimatedCompletion)
	assert.Nil(t, inProgress.CompletedAt)

	completed := orders[1]
	assert.Equal(t, model.StatusCompleted, completed.Status)
	assert.Equal(t, now.Add(-7*24*time.Hour), completed.CreatedAt)
	assert.Equal(t, now.Add(-24*time.Hour), *completed.CompletedAt)
	assert.Equal(t, "180 dias para bateria", completed.WarrantyTerms)

	p := NewPolicy(nil)
	for _, o := range orders {
		require.NoError(t, p.Validate(model.OrderDraft{
			DeviceModel: o.DeviceModel, RepairType: o.RepairType, DefectDescription: o.DefectDescription,
		}))
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 3, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2025 às 14:07", FormatDate(ts))
}

func TestMockGateway(t *testing.T) {
	require.NoError(t, NewMockGateway(0).Submit(context.Background(), model.ServiceOrder{}))
	require.NoError(t, NewMockGateway(time.Millisecond).Submit(context.Background(), model.ServiceOrder{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, NewMockGateway(time.Hour).Submit(ctx, model.ServiceOrder{}), context.Canceled)
}
