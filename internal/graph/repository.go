package graph

import (
	"context"
	"errors"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"gorm.io/gorm"
)

type RelationshipRepository interface {
	Create(ctx context.Context, rel *dbmysql.Relationship) error
	GetDirected(ctx context.Context, fromID, toID uint64, kind common.RelationshipKind) (*dbmysql.Relationship, error)
	PairExists(ctx context.Context, a, b uint64, kind common.RelationshipKind) (bool, error)
	ActiveEdgeExists(ctx context.Context, a, b uint64, kind common.RelationshipKind) (bool, error)
	DirectedExists(ctx context.Context, fromID, toID uint64, kind common.RelationshipKind) (bool, error)
	UpdateStatusCAS(ctx context.Context, id, version uint64, status common.RelationshipStatus, acceptedAt *time.Time) (bool, error)
	DeleteDirected(ctx context.Context, fromID, toID uint64, kind common.RelationshipKind) (bool, error)
	ListConnectionIDs(ctx context.Context, identityID uint64) ([]uint64, error)
	ListPending(ctx context.Context, identityID uint64) ([]*dbmysql.Relationship, error)
}

type relationshipRepository struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

// canonicalPair returns the unique-index key for an edge. Connection edges
// collapse to the unordered pair, so reciprocal concurrent requests hit the
// same key and the index rejects the second insert; directed kinds keep
// their order.
func canonicalPair(fromID, toID uint64, kind common.RelationshipKind) (uint64, uint64) {
	if kind == common.KindConnection && fromID > toID {
		return toID, fromID
	}
	return fromID, toID
}

func (r *relationshipRepository) Create(ctx context.Context, rel *dbmysql.Relationship) error {
	rel.PairLow, rel.PairHigh = canonicalPair(rel.FromID, rel.ToID, common.RelationshipKind(rel.Kind))
	err := r.db.WithContext(ctx).Create(rel).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrDuplicateEdge
	}
	return err
}

func (r *relationshipRepository) GetDirected(ctx context.Context, fromID, toID uint64, kind common.RelationshipKind) (*dbmysql.Relationship, error) {
	var rel dbmysql.Relationship
	err := r.db.WithContext(ctx).
		Where("from_id = ? AND to_id = ? AND kind = ?", fromID, toID, kind).
		First(&rel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationshipRepository) PairExists(ctx context.Context, a, b uint64, kind common.RelationshipKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Where("kind = ? AND ((from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?))", kind, a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

func (r *relationshipRepository) ActiveEdgeExists(ctx context.Context, a, b uint64, kind common.RelationshipKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Where("kind = ? AND status = ? AND ((from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?))",
			kind, common.StatusAccepted, a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

func (r *relationshipRepository) DirectedExists(ctx context.Context, fromID, toID uint64, kind common.RelationshipKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Where("from_id = ? AND to_id = ? AND kind = ?", fromID, toID, kind).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatusCAS applies a status transition guarded by the version column.
// When two transitions race on the same edge, the second sees zero affected
// rows and reports false.
func (r *relationshipRepository) UpdateStatusCAS(ctx context.Context, id, version uint64, status common.RelationshipStatus, acceptedAt *time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"status":      status,
			"accepted_at": acceptedAt,
			"version":     gorm.Expr("version + 1"),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *relationshipRepository) DeleteDirected(ctx context.Context, fromID, toID uint64, kind common.RelationshipKind) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("from_id = ? AND to_id = ? AND kind = ?", fromID, toID, kind).
		Delete(&dbmysql.Relationship{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *relationshipRepository) ListConnectionIDs(ctx context.Context, identityID uint64) ([]uint64, error) {
	var edges []dbmysql.Relationship
	err := r.db.WithContext(ctx).
		Where("kind = ? AND status = ? AND (from_id = ? OR to_id = ?)",
			common.KindConnection, common.StatusAccepted, identityID, identityID).
		Order("accepted_at DESC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(edges))
	for _, e := range edges {
		if e.FromID == identityID {
			ids = append(ids, e.ToID)
		} else {
			ids = append(ids, e.FromID)
		}
	}
	return ids, nil
}

func (r *relationshipRepository) ListPending(ctx context.Context, identityID uint64) ([]*dbmysql.Relationship, error) {
	var requests []*dbmysql.Relationship
	err := r.db.WithContext(ctx).
		Where("to_id = ? AND kind = ? AND status = ?", identityID, common.KindConnection, common.StatusPending).
		Order("requested_at DESC").
		Find(&requests).Error
	return requests, err
}
