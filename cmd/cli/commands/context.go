package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/internal/config"
	"github.com/jakechorley/activibe/pkg/core/services"
	"github.com/jakechorley/activibe/pkg/core/stores"
	"github.com/jakechorley/activibe/pkg/core/ticker"
	"github.com/jakechorley/activibe/pkg/seed"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg           *config.Config
	Auth          *stores.AuthStore
	Feed          *stores.FeedStore
	Notifications *stores.NotificationStore
	Events        *stores.ActiveEventStore
	Badges        *services.BadgeLedger
	Driver        *ticker.Driver
	Logger        *zap.Logger
	Ctx           context.Context
}

// Init fills the context with stores loaded from the seed data. The clock
// drives the session timer; nil uses the real clock.
func (app *AppContext) Init(ctx context.Context, cfg *config.Config, clock clockwork.Clock, logger *zap.Logger) {
	app.Ctx = ctx
	app.Cfg = cfg
	app.Logger = logger

	app.Auth = stores.NewAuthStore(seed.Volunteer(), seed.NGO())
	app.Feed = stores.NewFeedStore(seed.FeedPosts())
	app.Notifications = stores.NewNotificationStore(seed.Notifications())
	app.Events = stores.NewActiveEventStore(seed.Drive(), newCheckinID)
	app.Badges = services.NewBadgeLedger(seed.BadgeTypes(), seed.AnalyticsVolunteers())
	app.Driver = ticker.NewDriver(clock, cfg.Tick(), logger)
}

func newCheckinID() string {
	return "chk-" + uuid.New().String()
}
