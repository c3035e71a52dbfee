package session

import (
	"context"
	"time"

	"github.com/iosrepair/board-repair-manager/internal/idgen"
	"github.com/iosrepair/board-repair-manager/internal/model"
)

// AuthGateway resolves credentials or a registration into a store-owner profile.
// A real backend would check credentials and persist accounts; drafts reach it
// already validated.
type AuthGateway interface {
	Login(ctx context.Context, creds model.Credentials) (model.User, error)
	Register(ctx context.Context, reg model.Registration) (model.User, error)
}

// DemoProfile is the stand-in profile every login resolves to.
func DemoProfile(email string, now time.Time) model.User {
	return model.User{
		ID:        "1",
		FullName:  "João Silva",
		StoreName: "Tech Store SP",
		Document:  "12.345.678/0001-90",
		Email:     email,
		Phone:     "(11) 99999-9999",
		WhatsApp:  "(11) 99999-9999",
		Address: model.Address{
			Street:       "Rua das Palmeiras",
			Number:       "123",
			Complement:   "Sala 45",
			Neighborhood: "Centro",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01234-567",
		},
		CreatedAt: now,
	}
}

// MockAuthGateway accepts any credentials after a fixed delay.
type MockAuthGateway struct {
	LoginDelay    time.Duration
	RegisterDelay time.Duration

	ids  *idgen.Timestamp
	nowF func() time.Time
}

// NewMockAuthGateway returns a gateway simulating the given round-trip delays.
func NewMockAuthGateway(loginDelay, registerDelay time.Duration) *MockAuthGateway {
	return &MockAuthGateway{
		LoginDelay:    loginDelay,
		RegisterDelay: registerDelay,
		ids:           idgen.NewTimestamp(),
		nowF:          time.Now,
	}
}

// Login returns the demonstration profile carrying the submitted email.
// The password is never checked.
func (g *MockAuthGateway) Login(ctx context.Context, creds model.Credentials) (model.User, error) {
	if err := wait(ctx, g.LoginDelay); err != nil {
		return model.User{}, err
	}
	return DemoProfile(creds.Email, g.nowF()), nil
}

// Register returns a profile built from the submitted fields with a
// timestamp-derived id.
func (g *MockAuthGateway) Register(ctx context.Context, reg model.Registration) (model.User, error) {
	if err := wait(ctx, g.RegisterDelay); err != nil {
		return model.User{}, err
	}
	return reg.User(g.ids.Next(), g.nowF()), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
