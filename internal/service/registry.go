package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"LostAndFound/internal/blobstore"
	"LostAndFound/internal/model"
	"LostAndFound/internal/repo"
)

// ImageUpload carries an optional item photo into Create.
type ImageUpload struct {
	FileName string
	Data     io.Reader
}

// RegistryService owns the item lifecycle: create, list, status update and
// delete against relational storage, plus the image blob lifecycle.
// It keeps no local cache; callers patch their own state after success.
type RegistryService struct {
	items  repo.ItemRepository
	blobs  blobstore.Store
	logger *zap.SugaredLogger
}

func NewRegistryService(items repo.ItemRepository, blobs blobstore.Store, logger *zap.SugaredLogger) *RegistryService {
	return &RegistryService{items: items, blobs: blobs, logger: logger}
}

// Create registers a new item and returns its assigned id.
// userID must identify an authenticated admin; without it the call fails
// before any storage operation. An optional image is uploaded first; upload
// failure is logged and creation proceeds with an empty image URL: the
// item record takes priority over the photo. There is no transactionality
// between upload and insert: a blob uploaded for a failed insert is an
// accepted orphan.
func (s *RegistryService) Create(ctx context.Context, userID int64, item model.Item, image *ImageUpload) (string, error) {
	if userID <= 0 {
		return "", ErrAuthRequired
	}
	if err := validateItem(item); err != nil {
		return "", err
	}

	imageURL := ""
	if image != nil {
		key := blobstore.NewObjectKey(image.FileName)
		if err := s.blobs.Upload(ctx, key, image.Data); err != nil {
			s.logger.Warnw("image upload failed, registering item without image",
				"file", image.FileName, "key", key, "error", err)
		} else {
			imageURL = s.blobs.PublicURL(key)
		}
	}

	item.ImageURL = imageURL
	if item.Status == "" {
		item.Status = model.StatusUnclaimed
	}
	if err := s.items.Insert(ctx, &item); err != nil {
		return "", fmt.Errorf("%w: insert item: %v", ErrDatabase, err)
	}
	if item.ID == "" {
		return "", fmt.Errorf("%w: insert returned no id", ErrDatabase)
	}
	return item.ID, nil
}

// List returns all items ordered by found date descending (newest first).
func (s *RegistryService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.items.ListByFoundDateDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return items, nil
}

// UpdateStatus changes only the status of one item.
func (s *RegistryService) UpdateStatus(ctx context.Context, userID int64, id, status string) error {
	if userID <= 0 {
		return ErrAuthRequired
	}
	if !model.ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if err := s.items.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}
	return nil
}

// Delete removes an item row and then, best effort, its image blob.
// The row read comes first; delete never proceeds blind. The row deletion
// is authoritative: a failed blob removal is logged and swallowed, since the
// row is already gone and the blob is disposable.
func (s *RegistryService) Delete(ctx context.Context, userID int64, id string) error {
	if userID <= 0 {
		return ErrAuthRequired
	}

	imageURL, err := s.items.GetImageURL(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: read item before delete: %v", ErrFetch, err)
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrDelete, err)
	}

	if key := blobstore.KeyFromURL(imageURL); key != "" {
		if err := s.blobs.Remove(ctx, []string{key}); err != nil {
			s.logger.Errorw("failed to delete image from storage",
				"item_id", id, "key", key, "error", err)
		}
	}
	return nil
}

func validateItem(item model.Item) error {
	var missing []string
	if strings.TrimSpace(item.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(item.FoundLocation) == "" {
		missing = append(missing, "found_location")
	}
	if strings.TrimSpace(item.StorageLocation) == "" {
		missing = append(missing, "storage_location")
	}
	if item.FoundDate.IsZero() {
		missing = append(missing, "found_date")
	}
	if item.ExpirationDate.IsZero() {
		missing = append(missing, "expiration_date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required fields missing: %s", ErrValidation, strings.Join(missing, ", "))
	}
	if item.Status != "" && !model.ValidStatus(item.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, item.Status)
	}
	return nil
}
