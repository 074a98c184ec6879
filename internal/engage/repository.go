package engage

import (
	"context"
	"errors"
	"fmt"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"gorm.io/gorm"
)

type CounterRepository interface {
	GetContent(ctx context.Context, contentID uint64) (*dbmysql.Content, error)
	IncrementCounter(ctx context.Context, contentID uint64, column string) error
	MarkUniqueView(ctx context.Context, contentID, viewerID uint64, day string) (bool, error)
	UpdateScoreCAS(ctx context.Context, contentID, version uint64, score float64) (bool, error)
}

type counterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &counterRepository{db: db}
}

func (r *counterRepository) GetContent(ctx context.Context, contentID uint64) (*dbmysql.Content, error) {
	var content dbmysql.Content
	err := r.db.WithContext(ctx).First(&content, "content_id = ?", contentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// counterColumns guards the column name interpolated into the increment
// expression. Only these six are ever incremented.
var counterColumns = map[string]bool{
	"views":        true,
	"unique_views": true,
	"likes":        true,
	"comments":     true,
	"shares":       true,
	"saves":        true,
}

// IncrementCounter bumps one counter column by one in a single UPDATE, so
// concurrent events on the same item never lose increments.
func (r *counterRepository) IncrementCounter(ctx context.Context, contentID uint64, column string) error {
	if !counterColumns[column] {
		return fmt.Errorf("unknown counter column %q", column)
	}
	tx := r.db.WithContext(ctx).
		Model(&dbmysql.Content{}).
		Where("content_id = ?", contentID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// MarkUniqueView inserts the (content, viewer, day) marker. The unique index
// makes this race-safe: exactly one concurrent insert wins; losers report the
// view as already seen this window.
func (r *counterRepository) MarkUniqueView(ctx context.Context, contentID, viewerID uint64, day string) (bool, error) {
	marker := &dbmysql.ViewMarker{
		ContentID: contentID,
		ViewerID:  viewerID,
		Day:       day,
	}
	err := r.db.WithContext(ctx).Create(marker).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateScoreCAS writes the recomputed score guarded by the version column.
// A false return means the counter tuple changed underneath the caller.
func (r *counterRepository) UpdateScoreCAS(ctx context.Context, contentID, version uint64, score float64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&dbmysql.Content{}).
		Where("content_id = ? AND version = ?", contentID, version).
		UpdateColumns(map[string]interface{}{
			"engagement_score": score,
			"version":          gorm.Expr("version + 1"),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
