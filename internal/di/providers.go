package di

import (
	"gocircle/internal/access"
	"gocircle/internal/config"
	"gocircle/internal/dbmongo"
	"gocircle/internal/engage"
	"gocircle/internal/graph"
	"gocircle/internal/httpapi"
	"gocircle/internal/trending"

	"github.com/sirupsen/logrus"
)

// provideAccessGraph narrows the graph service to the two queries the access
// engine consults.
func provideAccessGraph(svc graph.Service) access.Graph {
	return svc
}

func provideEventSink(log *dbmongo.EventLog) engage.EventSink {
	return log
}

func provideEventReader(log *dbmongo.EventLog) httpapi.EventReader {
	return log
}

func provideEngageService(repo engage.CounterRepository, sink engage.EventSink, logger *logrus.Logger, cfg *config.Config) engage.Service {
	return engage.NewService(repo, sink, logger, cfg.Engagement.MaxScoreRetries)
}

func provideTrendingStore(cfg *config.Config) (*trending.SnapshotStore, error) {
	return trending.NewSnapshotStore(cfg.Trending.SnapshotDir)
}

func provideTrendingService(source trending.ContentSource, store *trending.SnapshotStore, logger *logrus.Logger, cfg *config.Config) trending.Service {
	return trending.NewService(source, store, logger,
		cfg.Trending.Lookback,
		cfg.Trending.RefreshInterval,
		cfg.Trending.Cap,
	)
}
