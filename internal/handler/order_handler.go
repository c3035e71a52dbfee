package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iosrepair/board-repair-manager/internal/middleware"
	"github.com/iosrepair/board-repair-manager/internal/model"
	"github.com/iosrepair/board-repair-manager/internal/order"
	"github.com/iosrepair/board-repair-manager/pkg/logger"
	"github.com/iosrepair/board-repair-manager/prometheus"
)

// OrderView is a service order as the dashboard renders it.
type OrderView struct {
	model.ServiceOrder
	StatusLabel                  string `json:"statusLabel"`
	CreatedAtFormatted           string `json:"createdAtFormatted"`
	EstimatedCompletionFormatted string `json:"estimatedCompletionFormatted,omitempty"`
	CompletedAtFormatted         string `json:"completedAtFormatted,omitempty"`
}

// NewOrderView adds the display fields to o.
func NewOrderView(o model.ServiceOrder) OrderView {
	v := OrderView{
		ServiceOrder:       o,
		StatusLabel:        o.Status.Label(),
		CreatedAtFormatted: order.FormatDate(o.CreatedAt),
	}
	if o.EstimatedCompletion != nil {
		v.EstimatedCompletionFormatted = order.FormatDate(*o.EstimatedCompletion)
	}
	if o.CompletedAt != nil {
		v.CompletedAtFormatted = order.FormatDate(*o.CompletedAt)
	}
	return v
}

// OrderHandler serves the dashboard's service orders of the caller's session.
type OrderHandler struct{}

// CreateOrder creates a pending service order from the submitted draft.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	log := logger.FromEcho(c)

	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	user, ok := s.User()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req model.OrderDraft
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse service order request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	o, err := s.Orders.Create(c.Request().Context(), req, user.ID)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			log.Warn("Rejected service order draft",
				zap.String("field", ve.Field),
				zap.String("device_model", req.DeviceModel),
				zap.String("repair_type", req.RepairType))
			prometheus.RecordValidationError("create_order", ve.Field)
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":       "Erro ao criar ordem",
				"description": ve.Message,
				"field":       ve.Field,
			})
		}
		log.Error("Failed to create service order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":       "Erro ao criar ordem",
			"description": "Tente novamente em alguns instantes.",
		})
	}

	prometheus.RecordOrderCreated(o.RepairType)
	log.Info("Service order created",
		zap.String("order_id", o.ID),
		zap.String("device_model", o.DeviceModel),
		zap.String("repair_type", o.RepairType))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Ordem criada com sucesso!",
		"description": "Sua ordem de serviço foi registrada e será processada em breve.",
		"order":       NewOrderView(o),
	})
}

// ListOrders returns every order of the session, most recent first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	orders := s.Orders.List()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}

	logger.FromEcho(c).Debug("Service orders listed", zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}

// GetOrder returns one order of the session.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	o, err := s.Orders.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve service order"})
	}
	return c.JSON(http.StatusOK, NewOrderView(o))
}

// SummarizeOrders returns the per-status counts shown on the dashboard overview.
func (h *OrderHandler) SummarizeOrders(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	return c.JSON(http.StatusOK, s.Orders.Summarize())
}
