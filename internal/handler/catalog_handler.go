package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iosrepair/board-repair-manager/internal/catalog"
)

// CatalogHandler exposes the lists the order form offers.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

// ListDeviceModels returns the supported device models, newest first.
func (h *CatalogHandler) ListDeviceModels(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.DeviceModels())
}

// ListRepairTypes returns the offered repair types.
func (h *CatalogHandler) ListRepairTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.RepairTypes())
}
