package access

import (
	"context"
	"errors"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(ctx context.Context, content *dbmysql.Content) error
	GetByID(ctx context.Context, contentID uint64) (*dbmysql.Content, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]dbmysql.Content, error)
	UpdateVisibility(ctx context.Context, contentID uint64, visibility common.Visibility) error
	SoftDelete(ctx context.Context, contentID uint64) error
}

type ReportRepository interface {
	Create(ctx context.Context, report *dbmysql.Report) error
	GetByID(ctx context.Context, reportID uint64) (*dbmysql.Report, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *dbmysql.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepository) GetByID(ctx context.Context, contentID uint64) (*dbmysql.Content, error) {
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

func (r *contentRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]dbmysql.Content, error) {
	var contents []dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("published_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *contentRepository) UpdateVisibility(ctx context.Context, contentID uint64, visibility common.Visibility) error {
	tx := r.db.WithContext(ctx).
		Model(&dbmysql.Content{}).
		Where("content_id = ?", contentID).
		Update("visibility", visibility)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *contentRepository) SoftDelete(ctx context.Context, contentID uint64) error {
	tx := r.db.WithContext(ctx).Delete(&dbmysql.Content{}, "content_id = ?", contentID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *dbmysql.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetByID(ctx context.Context, reportID uint64) (*dbmysql.Report, error) {
	var report dbmysql.Report
	err := r.db.WithContext(ctx).First(&report, "report_id = ?", reportID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
