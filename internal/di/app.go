// Package di assembles the service graph. Provider wiring lives in wire.go;
// wire_gen.go is the generated output and is checked in.
package di

import (
	"context"

	"gocircle/internal/dbmongo"
	"gocircle/internal/httpapi"
	"gocircle/internal/trending"

	"gorm.io/gorm"
)

// SocialApp is the fully wired serving side: HTTP handler over all services
// plus the handles the main needs for migration and shutdown.
type SocialApp struct {
	Handler  *httpapi.Handler
	Trending trending.Service
	DB       *gorm.DB
	Mongo    *dbmongo.MongoClient
	EventLog *dbmongo.EventLog
}

func (a *SocialApp) Close(ctx context.Context) error {
	return a.Mongo.Close(ctx)
}

// TrendingApp is the refresher side: it periodically rebuilds the ranking and
// persists snapshots the serving side falls back to.
type TrendingApp struct {
	Service trending.Service
	Store   *trending.SnapshotStore
}

func (a *TrendingApp) Close() error {
	return a.Store.Close()
}
