package session

import (
	"context"
	"errors"
	"sync"

	"github.com/iosrepair/board-repair-manager/internal/model"
)

var (
	// ErrAlreadyAuthenticated is returned by Login and Register on a holder that already has a user.
	ErrAlreadyAuthenticated = errors.New("session already authenticated")
	// ErrActionPending is returned while another Login or Register on the same holder is in flight.
	ErrActionPending = errors.New("another session action is pending")
)

// State is the authentication state of a Holder.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Holder tracks at most one authenticated user.
//
//	anonymous --Login/Register--> authenticated --Logout--> anonymous
type Holder struct {
	gateway AuthGateway

	mu      sync.Mutex
	user    *model.User
	pending bool
}

// NewHolder returns an anonymous holder resolving users through gateway.
func NewHolder(gateway AuthGateway) *Holder {
	return &Holder{gateway: gateway}
}

// Login validates creds and, through the gateway, authenticates the holder.
func (h *Holder) Login(ctx context.Context, creds model.Credentials) (model.User, error) {
	if err := creds.Validate(); err != nil {
		return model.User{}, err
	}
	return h.authenticate(ctx, func(ctx context.Context) (model.User, error) {
		return h.gateway.Login(ctx, creds)
	})
}

// Register validates reg and, through the gateway, authenticates the holder
// as the newly registered user.
func (h *Holder) Register(ctx context.Context, reg model.Registration) (model.User, error) {
	if err := reg.Validate(); err != nil {
		return model.User{}, err
	}
	return h.authenticate(ctx, func(ctx context.Context) (model.User, error) {
		return h.gateway.Register(ctx, reg)
	})
}

func (h *Holder) authenticate(ctx context.Context, resolve func(context.Context) (model.User, error)) (model.User, error) {
	h.mu.Lock()
	switch {
	case h.user != nil:
		h.mu.Unlock()
		return model.User{}, ErrAlreadyAuthenticated
	case h.pending:
		h.mu.Unlock()
		return model.User{}, ErrActionPending
	}
	h.pending = true
	h.mu.Unlock()

	user, err := resolve(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = false
	if err != nil {
		return model.User{}, err
	}
	h.user = &user
	return user, nil
}

// Logout clears the held user. It is a no-op on an anonymous holder.
func (h *Holder) Logout() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.user = nil
}

// Current returns the held user, if any.
func (h *Holder) Current() (model.User, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.user == nil {
		return model.User{}, false
	}
	return *h.user, true
}

// State reports whether a user is held.
func (h *Holder) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.user == nil {
		return StateAnonymous
	}
	return StateAuthenticated
}
