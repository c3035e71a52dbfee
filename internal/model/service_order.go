package model

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of a service order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in-progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Statuses lists every status in display order.
var Statuses = []OrderStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Label is the pt-BR badge text shown for the status.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusInProgress:
		return "Em Andamento"
	case StatusCompleted:
		return "Finalizado"
	case StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

// ParseStatus accepts only the four known status values.
func ParseStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", NewValidationError("status", fmt.Sprintf("status desconhecido %q", s))
	}
	return status, nil
}

// ServiceOrder represents a repair ticket
type ServiceOrder struct {
	ID                  string      `json:"id"`
	UserID              string      `json:"userId"`
	DeviceModel         string      `json:"deviceModel"`
	DefectDescription   string      `json:"defectDescription"`
	RepairType          string      `json:"repairType"`
	Status              OrderStatus `json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
	EstimatedCompletion *time.Time  `json:"estimatedCompletion,omitempty"`
	CompletedAt         *time.Time  `json:"completedAt,omitempty"`
	WarrantyTerms       string      `json:"warrantyTerms"`
	Notes               string      `json:"notes,omitempty"`
}

// Clone returns a copy that shares no pointers with o.
func (o ServiceOrder) Clone() ServiceOrder {
	if o.EstimatedCompletion != nil {
		t := *o.EstimatedCompletion
		o.EstimatedCompletion = &t
	}
	if o.CompletedAt != nil {
		t := *o.CompletedAt
		o.CompletedAt = &t
	}
	return o
}

// OrderDraft is the user-submitted field set for a new service order
type OrderDraft struct {
	DeviceModel       string `json:"deviceModel"`
	RepairType        string `json:"repairType"`
	DefectDescription string `json:"defectDescription"`
	Notes             string `json:"notes"`
}

// OrderSummary counts orders per status
type OrderSummary struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in-progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	Total      int `json:"total"`
}

// Add counts one order with the given status.
func (s *OrderSummary) Add(status OrderStatus) {
	switch status {
	case StatusPending:
		s.Pending++
	case StatusInProgress:
		s.InProgress++
	case StatusCompleted:
		s.Completed++
	case StatusCancelled:
		s.Cancelled++
	}
	s.Total++
}

// Count returns the number of orders with status.
func (s OrderSummary) Count(status OrderStatus) int {
	switch status {
	case StatusPending:
		return s.Pending
	case StatusInProgress:
		return s.InProgress
	case StatusCompleted:
		return s.Completed
	case StatusCancelled:
		return s.Cancelled
	}
	return 0
}
