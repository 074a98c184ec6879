// Package graph maintains connection, follow and block edges between
// identity pairs and answers the relationship queries used by the access
// policy engine.
package graph

import (
	"context"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"
)

type Service interface {
	RequestConnection(ctx context.Context, requesterID, targetID uint64) error
	AcceptConnection(ctx context.Context, receiverID, requesterID uint64) error
	RejectConnection(ctx context.Context, receiverID, requesterID uint64) error
	CancelConnection(ctx context.Context, requesterID, targetID uint64) error
	Block(ctx context.Context, actorID, targetID uint64) error
	Unblock(ctx context.Context, actorID, targetID uint64) error
	Follow(ctx context.Context, actorID, targetID uint64) error
	Unfollow(ctx context.Context, actorID, targetID uint64) error

	IsConnected(ctx context.Context, a, b uint64) (bool, error)
	IsBlocked(ctx context.Context, a, b uint64) (bool, error)
	IsFollowing(ctx context.Context, actorID, targetID uint64) (bool, error)
	ListConnections(ctx context.Context, identityID uint64) ([]uint64, error)
	ListPendingRequests(ctx context.Context, identityID uint64) ([]*dbmysql.Relationship, error)
}

type graphService struct {
	repo RelationshipRepository
}

func NewService(repo RelationshipRepository) Service {
	return &graphService{repo: repo}
}

func (s *graphService) RequestConnection(ctx context.Context, requesterID, targetID uint64) error {
	if requesterID == targetID {
		return common.ErrSelfReference
	}

	// At most one connection record per unordered pair, regardless of
	// direction or status. A rejected request is terminal, not retriable.
	// This lookup is only a fast path; the canonical (pair_low, pair_high)
	// unique index is what actually rejects the second of two reciprocal
	// requests racing past it.
	exists, err := s.repo.PairExists(ctx, requesterID, targetID, common.KindConnection)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrDuplicateEdge
	}

	return s.repo.Create(ctx, &dbmysql.Relationship{
		FromID: requesterID,
		ToID:   targetID,
		Kind:   string(common.KindConnection),
		Status: string(common.StatusPending),
	})
}

func (s *graphService) AcceptConnection(ctx context.Context, receiverID, requesterID uint64) error {
	now := time.Now()
	return s.transition(ctx, requesterID, receiverID, common.StatusAccepted, &now)
}

func (s *graphService) RejectConnection(ctx context.Context, receiverID, requesterID uint64) error {
	return s.transition(ctx, requesterID, receiverID, common.StatusRejected, nil)
}

func (s *graphService) CancelConnection(ctx context.Context, requesterID, targetID uint64) error {
	return s.transition(ctx, requesterID, targetID, common.StatusCancelled, nil)
}

// transition moves the pending edge requester→receiver to a terminal status.
// The actor's position in the lookup enforces who may do what: only the
// receiver finds the edge to accept or reject, only the requester to cancel.
func (s *graphService) transition(ctx context.Context, fromID, toID uint64, status common.RelationshipStatus, acceptedAt *time.Time) error {
	rel, err := s.repo.GetDirected(ctx, fromID, toID, common.KindConnection)
	if err != nil {
		return err
	}
	if common.RelationshipStatus(rel.Status).Terminal() {
		return common.ErrInvalidTransition
	}

	ok, err := s.repo.UpdateStatusCAS(ctx, rel.ID, rel.Version, status, acceptedAt)
	if err != nil {
		return err
	}
	if !ok {
		// A concurrent transition won the version race.
		return common.ErrInvalidTransition
	}
	return nil
}

func (s *graphService) Block(ctx context.Context, actorID, targetID uint64) error {
	return s.createUnconditional(ctx, actorID, targetID, common.KindBlock)
}

func (s *graphService) Unblock(ctx context.Context, actorID, targetID uint64) error {
	return s.deleteUnconditional(ctx, actorID, targetID, common.KindBlock)
}

func (s *graphService) Follow(ctx context.Context, actorID, targetID uint64) error {
	return s.createUnconditional(ctx, actorID, targetID, common.KindFollow)
}

func (s *graphService) Unfollow(ctx context.Context, actorID, targetID uint64) error {
	return s.deleteUnconditional(ctx, actorID, targetID, common.KindFollow)
}

// Follow and block edges have no state machine: existing means true. They
// are stored as accepted so the same status column serves all three kinds.
func (s *graphService) createUnconditional(ctx context.Context, actorID, targetID uint64, kind common.RelationshipKind) error {
	if actorID == targetID {
		return common.ErrSelfReference
	}
	exists, err := s.repo.DirectedExists(ctx, actorID, targetID, kind)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrDuplicateEdge
	}
	return s.repo.Create(ctx, &dbmysql.Relationship{
		FromID: actorID,
		ToID:   targetID,
		Kind:   string(kind),
		Status: string(common.StatusAccepted),
	})
}

func (s *graphService) deleteUnconditional(ctx context.Context, actorID, targetID uint64, kind common.RelationshipKind) error {
	deleted, err := s.repo.DeleteDirected(ctx, actorID, targetID, kind)
	if err != nil {
		return err
	}
	if !deleted {
		return common.ErrNotFound
	}
	return nil
}

func (s *graphService) IsConnected(ctx context.Context, a, b uint64) (bool, error) {
	return s.repo.ActiveEdgeExists(ctx, a, b, common.KindConnection)
}

func (s *graphService) IsBlocked(ctx context.Context, a, b uint64) (bool, error) {
	return s.repo.ActiveEdgeExists(ctx, a, b, common.KindBlock)
}

func (s *graphService) IsFollowing(ctx context.Context, actorID, targetID uint64) (bool, error) {
	return s.repo.DirectedExists(ctx, actorID, targetID, common.KindFollow)
}

func (s *graphService) ListConnections(ctx context.Context, identityID uint64) ([]uint64, error) {
	return s.repo.ListConnectionIDs(ctx, identityID)
}

func (s *graphService) ListPendingRequests(ctx context.Context, identityID uint64) ([]*dbmysql.Relationship, error) {
	return s.repo.ListPending(ctx, identityID)
}
