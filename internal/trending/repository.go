package trending

import (
	"context"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"gorm.io/gorm"
)

type contentSource struct {
	db *gorm.DB
}

func NewContentSource(db *gorm.DB) ContentSource {
	return &contentSource{db: db}
}

// ListPublicSince reads the ranking candidates in one scan. Soft-deleted rows
// are excluded by the deleted_at convention.
func (r *contentSource) ListPublicSince(ctx context.Context, since time.Time) ([]dbmysql.Content, error) {
	var rows []dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("visibility = ? AND published_at >= ?", common.VisibilityPublic, since).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
