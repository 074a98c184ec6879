// Package access decides who may see what. The decision logic lives in
// explicit functions invoked by the serving layer, not in storage-engine
// predicates, so every rule is unit-testable on its own.
package access

import (
	"context"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"
)

// Graph is the slice of the social graph the policy engine consults.
type Graph interface {
	IsConnected(ctx context.Context, a, b uint64) (bool, error)
	IsBlocked(ctx context.Context, a, b uint64) (bool, error)
}

type Engine struct {
	graph Graph
}

func NewEngine(graph Graph) *Engine {
	return &Engine{graph: graph}
}

// CanView evaluates the visibility decision table in order, first match wins:
//
//  1. soft-deleted            → deny (even for the owner)
//  2. viewer is the owner     → allow
//  3. either party blocked    → deny, regardless of visibility
//  4. public                  → allow
//  5. connections + connected → allow
//  6. otherwise               → deny (private, or connection not accepted)
//
// The block check runs before any connection check: a block suppresses access
// even while an accepted connection edge still exists in storage.
func (e *Engine) CanView(ctx context.Context, content *dbmysql.Content, viewerID uint64) (bool, error) {
	if content.DeletedAt.Valid {
		return false, nil
	}

	authenticated := viewerID != common.AnonymousID

	if authenticated && viewerID == content.OwnerID {
		return true, nil
	}

	if authenticated {
		blocked, err := e.graph.IsBlocked(ctx, viewerID, content.OwnerID)
		if err != nil {
			return false, err
		}
		if blocked {
			return false, nil
		}
	}

	switch common.Visibility(content.Visibility) {
	case common.VisibilityPublic:
		return true, nil
	case common.VisibilityConnections:
		if !authenticated {
			return false, nil
		}
		return e.graph.IsConnected(ctx, viewerID, content.OwnerID)
	default:
		return false, nil
	}
}

// CanModerate allows the author of a report or an actor with admin capability
// to read the moderation record. Nobody else.
func CanModerate(report *dbmysql.Report, actorID uint64, actorAdmin bool) bool {
	if actorAdmin {
		return true
	}
	return actorID != common.AnonymousID && actorID == report.ReporterID
}
