// Package order keeps the service orders of one portal session and applies
// the rules for creating them.
package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iosrepair/board-repair-manager/internal/idgen"
	"github.com/iosrepair/board-repair-manager/internal/model"
)

// ErrOrderNotFound is returned by Get for an unknown id.
var ErrOrderNotFound = errors.New("service order not found")

// StoreConfig wires a Store. Nil fields get working defaults.
type StoreConfig struct {
	Policy         *Policy
	Gateway        Gateway
	IDs            *idgen.Timestamp
	SeedDemoOrders bool
	Now            func() time.Time
}

// Store is the in-memory, most-recent-first collection of one session's orders.
type Store struct {
	// createMu serializes Create so insertion order matches creation order
	// even while the gateway is waiting.
	createMu sync.Mutex

	mu     sync.RWMutex
	orders []model.ServiceOrder

	policy  *Policy
	gateway Gateway
	ids     *idgen.Timestamp
	seed    bool
	nowF    func() time.Time
}

// NewStore returns an empty store.
func NewStore(cfg StoreConfig) *Store {
	s := &Store{
		policy:  cfg.Policy,
		gateway: cfg.Gateway,
		ids:     cfg.IDs,
		seed:    cfg.SeedDemoOrders,
		nowF:    cfg.Now,
	}
	if s.policy == nil {
		s.policy = NewPolicy(nil)
	}
	if s.gateway == nil {
		s.gateway = NewMockGateway(0)
	}
	if s.nowF == nil {
		s.nowF = time.Now
	}
	if s.ids == nil {
		s.ids = idgen.NewTimestampWithClock(s.nowF)
	}
	return s
}

// Initialize replaces the collection with the demonstration orders of ownerID,
// or with nothing when seeding is disabled.
func (s *Store) Initialize(ownerID string) {
	var orders []model.ServiceOrder
	if s.seed {
		orders = SeedOrders(ownerID, s.nowF())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

// Create validates draft, derives the remaining fields, hands the order to the
// gateway and inserts it at the front. Failures leave the collection untouched.
func (s *Store) Create(ctx context.Context, draft model.OrderDraft, ownerID string) (model.ServiceOrder, error) {
	if err := s.policy.Validate(draft); err != nil {
		return model.ServiceOrder{}, err
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	o := s.policy.NewOrder(s.ids.Next(), ownerID, draft, s.nowF())
	if err := s.gateway.Submit(ctx, o.Clone()); err != nil {
		return model.ServiceOrder{}, fmt.Errorf("submit service order: %w", err)
	}

	s.mu.Lock()
	s.orders = append([]model.ServiceOrder{o}, s.orders...)
	s.mu.Unlock()

	return o.Clone(), nil
}

// List returns copies of all orders, most recent first.
func (s *Store) List() []model.ServiceOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ServiceOrder, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// Get returns a copy of the order with id.
func (s *Store) Get(id string) (model.ServiceOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return model.ServiceOrder{}, ErrOrderNotFound
}

// Summarize counts the listed orders per status.
func (s *Store) Summarize() model.OrderSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary model.OrderSummary
	for _, o := range s.orders {
		summary.Add(o.Status)
	}
	return summary
}

// Len returns the number of orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
