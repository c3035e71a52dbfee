// Package session holds the identity of the signed-in store owner and the
// live portal sessions of the process.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iosrepair/board-repair-manager/internal/model"
	"github.com/iosrepair/board-repair-manager/internal/order"
)

// ErrSessionNotFound is returned for unknown, closed or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Session is one signed-in store owner together with the dashboard's orders.
type Session struct {
	ID        string
	Holder    *Holder
	Orders    *order.Store
	ExpiresAt time.Time
}

// User returns the user held by the session.
func (s *Session) User() (model.User, bool) {
	return s.Holder.Current()
}

// ManagerConfig wires a Manager. Nil fields get working defaults.
type ManagerConfig struct {
	Gateway AuthGateway
	// NewStore builds the order store of each new session.
	NewStore func() *order.Store
	TTL      time.Duration
	Now      func() time.Time
	NewID    func() string
}

// Manager opens, resolves and closes sessions.
type Manager struct {
	gateway  AuthGateway
	newStore func() *order.Store
	ttl      time.Duration
	nowF     func() time.Time
	newID    func() string

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager returns a manager without sessions.
func NewManager(cfg ManagerConfig) *Manager {
	m := &Manager{
		gateway:  cfg.Gateway,
		newStore: cfg.NewStore,
		ttl:      cfg.TTL,
		nowF:     cfg.Now,
		newID:    cfg.NewID,
		sessions: make(map[string]*Session),
	}
	if m.gateway == nil {
		m.gateway = NewMockAuthGateway(0, 0)
	}
	if m.newStore == nil {
		m.newStore = func() *order.Store { return order.NewStore(order.StoreConfig{SeedDemoOrders: true}) }
	}
	if m.ttl <= 0 {
		m.ttl = 24 * time.Hour
	}
	if m.nowF == nil {
		m.nowF = time.Now
	}
	if m.newID == nil {
		m.newID = func() string { return uuid.New().String() }
	}
	return m
}

// Login authenticates a fresh holder with creds and opens its session.
func (m *Manager) Login(ctx context.Context, creds model.Credentials) (*Session, error) {
	h := NewHolder(m.gateway)
	if _, err := h.Login(ctx, creds); err != nil {
		return nil, err
	}
	return m.open(h), nil
}

// Register authenticates a fresh holder as the registered user and opens its session.
func (m *Manager) Register(ctx context.Context, reg model.Registration) (*Session, error) {
	h := NewHolder(m.gateway)
	if _, err := h.Register(ctx, reg); err != nil {
		return nil, err
	}
	return m.open(h), nil
}

func (m *Manager) open(h *Holder) *Session {
	user, _ := h.Current()

	s := &Session{
		ID:        m.newID(),
		Holder:    h,
		Orders:    m.newStore(),
		ExpiresAt: m.nowF().Add(m.ttl),
	}
	s.Orders.Initialize(user.ID)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	m.sessions[s.ID] = s
	return s
}

// Get returns the live session with id. Expired sessions are dropped.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !s.ExpiresAt.After(m.nowF()) {
		m.Logout(id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Logout clears the session's user and forgets the session. It reports
// whether the session existed.
func (m *Manager) Logout(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.Holder.Logout()
	}
	return ok
}

// Len returns the number of open sessions, expired ones included until swept.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sweepLocked() {
	now := m.nowF()
	for id, s := range m.sessions {
		if !s.ExpiresAt.After(now) {
			delete(m.sessions, id)
			s.Holder.Logout()
		}
	}
}
