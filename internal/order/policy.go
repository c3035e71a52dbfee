package order

import (
	"strings"
	"time"

	"github.com/iosrepair/board-repair-manager/internal/catalog"
	"github.com/iosrepair/board-repair-manager/internal/model"
)

const (
	// DefaultWarrantyTerms is attached to every new order.
	DefaultWarrantyTerms = "90 dias para defeitos de fabricação"
	// EstimatedCompletionOffset is added to createdAt to estimate completion.
	EstimatedCompletionOffset = 7 * 24 * time.Hour

	dateLayout = "02/01/2006 às 15:04"
)

// Policy decides whether a draft is acceptable and fills the derived fields
// of a new order.
type Policy struct {
	catalog *catalog.Catalog
}

// NewPolicy returns a policy validating against c, or the built-in catalog when c is nil.
func NewPolicy(c *catalog.Catalog) *Policy {
	if c == nil {
		c = catalog.Default()
	}
	return &Policy{catalog: c}
}

// Catalog returns the catalog drafts are checked against.
func (p *Policy) Catalog() *catalog.Catalog {
	return p.catalog
}

// Validate rejects drafts naming a device model or repair type outside the
// catalog, or without a defect description.
func (p *Policy) Validate(d model.OrderDraft) error {
	if !p.catalog.HasDeviceModel(d.DeviceModel) {
		return model.NewValidationError("deviceModel", "modelo fora do catálogo")
	}
	if !p.catalog.HasRepairType(d.RepairType) {
		return model.NewValidationError("repairType", "tipo de reparo fora do catálogo")
	}
	if strings.TrimSpace(d.DefectDescription) == "" {
		return model.NewValidationError("defectDescription", "descrição do defeito é obrigatória")
	}
	return nil
}

// NewOrder builds a pending order from an already validated draft.
func (p *Policy) NewOrder(id, ownerID string, d model.OrderDraft, now time.Time) model.ServiceOrder {
	eta := now.Add(EstimatedCompletionOffset)
	return model.ServiceOrder{
		ID:                  id,
		UserID:              ownerID,
		DeviceModel:         d.DeviceModel,
		DefectDescription:   d.DefectDescription,
		RepairType:          d.RepairType,
		Status:              model.StatusPending,
		CreatedAt:           now,
		EstimatedCompletion: &eta,
		WarrantyTerms:       DefaultWarrantyTerms,
		Notes:               d.Notes,
	}
}

// SeedOrders returns the two demonstration orders shown on a fresh dashboard,
// most recent first.
func SeedOrders(ownerID string, now time.Time) []model.ServiceOrder {
	const day = 24 * time.Hour

	eta := now.Add(3 * day)
	completed := now.Add(-1 * day)
	return []model.ServiceOrder{
		{
			ID:                  "1",
			UserID:              ownerID,
			DeviceModel:         "iPhone 14 Pro Max",
			DefectDescription:   "Tela não liga após queda",
			RepairType:          "Troca de display",
			Status:              model.StatusInProgress,
			CreatedAt:           now.Add(-2 * day),
			EstimatedCompletion: &eta,
			WarrantyTerms:       DefaultWarrantyTerms,
		},
		{
			ID:                "2",
			UserID:            ownerID,
			DeviceModel:       "iPhone 13",
			DefectDescription: "Bateria não carrega",
			RepairType:        "Troca de bateria",
			Status:            model.StatusCompleted,
			CreatedAt:         now.Add(-7 * day),
			CompletedAt:       &completed,
			WarrantyTerms:     "180 dias para bateria",
		},
	}
}

// FormatDate renders t the way the dashboard shows dates, e.g. "05/03/2025 às 14:07".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
