package media

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/voicelab/coach-api/internal/models"
)

// RepositoryImpl implements the Repository interface using GORM
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new media repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateMedia creates a new media item
func (r *RepositoryImpl) CreateMedia(ctx context.Context, media *models.Media) error {
	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		return fmt.Errorf("creating media: %w", err)
	}
	return nil
}

// GetMediaByID retrieves a media item by its database ID
func (r *RepositoryImpl) GetMediaByID(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		return nil, fmt.Errorf("getting media by ID: %w", err)
	}
	return &media, nil
}

// GetMediaByUUID retrieves a media item by its UUID
func (r *RepositoryImpl) GetMediaByUUID(ctx context.Context, uuid string) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&media).Error; err != nil {
		return nil, fmt.Errorf("getting media by UUID: %w", err)
	}
	return &media, nil
}

// ListMedia retrieves media items with pagination
func (r *RepositoryImpl) ListMedia(ctx context.Context, limit, offset int) ([]models.Media, int64, error) {
	var items []models.Media
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Media{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting media: %w", err)
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing media: %w", err)
	}

	return items, total, nil
}

// UpdateMedia updates an existing media item
func (r *RepositoryImpl) UpdateMedia(ctx context.Context, media *models.Media) error {
	result := r.db.WithContext(ctx).Save(media)
	if result.Error != nil {
		return fmt.Errorf("updating media: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("media not found")
	}
	return nil
}

// DeleteMedia deletes a media item
func (r *RepositoryImpl) DeleteMedia(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Media{}, id).Error; err != nil {
		return fmt.Errorf("deleting media: %w", err)
	}
	return nil
}
