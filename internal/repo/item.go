package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"LostAndFound/internal/model"
)

// ItemRepository is the access contract for lost_items used by the service layer.
type ItemRepository interface {
	// Insert persists a new item. An empty ID is assigned a fresh uuid.
	Insert(ctx context.Context, item *model.Item) error

	// ListByFoundDateDesc returns all items, most recently found first.
	ListByFoundDateDesc(ctx context.Context) ([]model.Item, error)

	// UpdateStatus changes only the status column of one item.
	// Returns gorm.ErrRecordNotFound if no row matches id.
	UpdateStatus(ctx context.Context, id, status string) error

	// GetImageURL returns the stored image_url of one item.
	// Returns gorm.ErrRecordNotFound if no row matches id.
	GetImageURL(ctx context.Context, id string) (string, error)

	// Delete removes the row. Returns gorm.ErrRecordNotFound if no row matches id.
	Delete(ctx context.Context, id string) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository creates the GORM-backed item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Insert(ctx context.Context, item *model.Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) ListByFoundDateDesc(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("found_date DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tx := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepo) GetImageURL(ctx context.Context, id string) (string, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Select("image_url").
		Where("id = ?", id).
		Take(&item).Error
	if err != nil {
		return "", err
	}
	return item.ImageURL, nil
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
