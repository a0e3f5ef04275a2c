package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PortalModule is one dashboard tile. Notifications is a live count relevant to the module.
type PortalModule struct {
	ID            string
	Name          string
	Status        string
	Notifications int64
}

// PortalStats is the dashboard shown after login.
type PortalStats struct {
	Greeting string
	Modules  []PortalModule
}

// PortalUsecase aggregates per-module counts for the dashboard.
type PortalUsecase interface {
	Stats(ctx context.Context, userID uuid.UUID) (*PortalStats, error)
}
