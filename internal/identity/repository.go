package identity

import (
	"context"
	"errors"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, id *dbmysql.Identity) error
	GetByID(ctx context.Context, identityID uint64) (*dbmysql.Identity, error)
	GetByHandle(ctx context.Context, handle string) (*dbmysql.Identity, error)
	GetByEmailHash(ctx context.Context, emailHash string) (*dbmysql.Identity, error)
	CheckHandleExists(ctx context.Context, handle string) (bool, error)
	Update(ctx context.Context, id *dbmysql.Identity) error
	SoftDelete(ctx context.Context, identityID uint64) error
}

type identityRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Create(ctx context.Context, id *dbmysql.Identity) error {
	return r.db.WithContext(ctx).Create(id).Error
}

func (r *identityRepository) GetByID(ctx context.Context, identityID uint64) (*dbmysql.Identity, error) {
	var id dbmysql.Identity
	err := r.db.WithContext(ctx).First(&id, "identity_id = ?", identityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *identityRepository) GetByHandle(ctx context.Context, handle string) (*dbmysql.Identity, error) {
	var id dbmysql.Identity
	err := r.db.WithContext(ctx).First(&id, "handle = ?", handle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *identityRepository) GetByEmailHash(ctx context.Context, emailHash string) (*dbmysql.Identity, error) {
	var id dbmysql.Identity
	err := r.db.WithContext(ctx).First(&id, "email_hash = ?", emailHash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *identityRepository) CheckHandleExists(ctx context.Context, handle string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Identity{}).
		Where("handle = ?", handle).
		Count(&count).Error
	return count > 0, err
}

func (r *identityRepository) Update(ctx context.Context, id *dbmysql.Identity) error {
	return r.db.WithContext(ctx).Save(id).Error
}

// SoftDelete marks the identity deleted but keeps the row for referential
// integrity of edges and content ownership. Status flip and soft delete
// commit together so a failure never leaves a deleted status on a live row.
func (r *identityRepository) SoftDelete(ctx context.Context, identityID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&dbmysql.Identity{}).
			Where("identity_id = ?", identityID).
			Update("status", "deleted")
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrNotFound
		}
		return tx.Delete(&dbmysql.Identity{}, "identity_id = ?", identityID).Error
	})
}
