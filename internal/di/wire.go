//go:build wireinject
// +build wireinject

package di

import (
	"gocircle/internal/access"
	"gocircle/internal/config"
	"gocircle/internal/dbmongo"
	"gocircle/internal/dbmysql"
	"gocircle/internal/engage"
	"gocircle/internal/graph"
	"gocircle/internal/httpapi"
	"gocircle/internal/identity"
	"gocircle/internal/trending"

	"github.com/google/wire"
	"github.com/sirupsen/logrus"
)

func InitializeSocialApp(cfg *config.Config, logger *logrus.Logger, vaultKey []byte) (*SocialApp, error) {
	wire.Build(
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewEventLog,
		provideEventSink,
		provideEventReader,

		identity.NewRepository,
		identity.NewService,

		graph.NewRelationshipRepository,
		graph.NewService,

		provideAccessGraph,
		access.NewEngine,
		access.NewContentRepository,
		access.NewReportRepository,
		access.NewService,

		engage.NewCounterRepository,
		provideEngageService,

		provideTrendingStore,
		trending.NewContentSource,
		provideTrendingService,

		httpapi.NewHandler,
		wire.Struct(new(SocialApp), "Handler", "Trending", "DB", "Mongo", "EventLog"),
	)
	return nil, nil
}

func InitializeTrendingApp(cfg *config.Config, logger *logrus.Logger) (*TrendingApp, error) {
	wire.Build(
		dbmysql.NewMySQL,
		trending.NewContentSource,
		provideTrendingStore,
		provideTrendingService,
		wire.Struct(new(TrendingApp), "Service", "Store"),
	)
	return nil, nil
}
