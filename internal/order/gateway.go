package order

import (
	"context"
	"time"

	"github.com/iosrepair/board-repair-manager/internal/model"
)

// Gateway receives every order the store is about to accept. A backend-backed
// implementation would persist it; an error aborts the creation.
type Gateway interface {
	Submit(ctx context.Context, o model.ServiceOrder) error
}

// MockGateway accepts every order after Delay.
type MockGateway struct {
	Delay time.Duration
}

// NewMockGateway returns a gateway that waits delay before accepting.
func NewMockGateway(delay time.Duration) *MockGateway {
	return &MockGateway{Delay: delay}
}

// Submit waits for the configured delay or until ctx is done.
func (g *MockGateway) Submit(ctx context.Context, _ model.ServiceOrder) error {
	if g.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
