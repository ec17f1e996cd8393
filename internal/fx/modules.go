package fx

import (
	"boardgame-tracker/internal/config"
	"boardgame-tracker/internal/database"
	"boardgame-tracker/internal/logger"
	"boardgame-tracker/internal/repository"
	"boardgame-tracker/internal/server"
	"boardgame-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewGroupRepository),
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewTeamRepository),
	fx.Provide(repository.NewSessionRepository),
	// svc
	fx.Provide(service.NewGroupService),
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewSessionService),
	fx.Provide(service.NewScoreboardService),
	fx.Provide(service.NewExportService),
	// server
	fx.Provide(server.NewTrackerServer),
)
