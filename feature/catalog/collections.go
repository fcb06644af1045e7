package catalog

import (
	"context"
	"fmt"
	"time"

	"bestseller-sync/feature/catalog/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeFormat is how Audiobookshelf stores timestamps (always UTC).
const TimeFormat = "2006-01-02 15:04:05.000 -07:00"

// insertBatch keeps a membership insert under SQLite's bound-parameter limit.
const insertBatch = 100

// Collections writes collections and their membership.
type Collections struct {
	db    *gorm.DB
	now   func() time.Time
	newID func() string
}

// NewCollections creates a writer over db, which should be the run transaction.
func NewCollections(db *gorm.DB) *Collections {
	return &Collections{db: db, now: time.Now, newID: uuid.NewString}
}

func (c *Collections) timestamp() string {
	return c.now().UTC().Format(TimeFormat)
}

// EnsureGroup returns the id of the named collection in the library, creating it when absent.
// An existing collection only has its updatedAt touched.
func (c *Collections) EnsureGroup(ctx context.Context, name, libraryID string) (string, error) {
	db := c.db.WithContext(ctx)
	ts := c.timestamp()

	var existing models.Collection
	res := db.Where("name = ? AND libraryId = ?", name, libraryID).Limit(1).Find(&existing)
	if res.Error != nil {
		return "", fmt.Errorf("failed to look up collection %q: %w", name, res.Error)
	}
	if res.RowsAffected > 0 {
		err := db.Model(&models.Collection{}).
			Where("id = ?", existing.ID).
			Update("updatedAt", ts).Error
		if err != nil {
			return "", fmt.Errorf("failed to touch collection %q: %w", name, err)
		}
		return existing.ID, nil
	}

	created := models.Collection{
		ID:        c.newID(),
		Name:      name,
		CreatedAt: ts,
		UpdatedAt: ts,
		LibraryID: libraryID,
	}
	if err := db.Create(&created).Error; err != nil {
		return "", fmt.Errorf("failed to create collection %q: %w", name, err)
	}
	return created.ID, nil
}

// ReplaceMembership deletes every member of the collection and inserts ids, deduplicated
// with the first occurrence kept, at positions 1..N. It returns N.
func (c *Collections) ReplaceMembership(ctx context.Context, collectionID string, ids []string) (int, error) {
	db := c.db.WithContext(ctx)

	if err := db.Where("collectionId = ?", collectionID).Delete(&models.CollectionBook{}).Error; err != nil {
		return 0, fmt.Errorf("failed to clear collection %s: %w", collectionID, err)
	}

	ts := c.timestamp()
	seen := make(map[string]struct{}, len(ids))
	rows := make([]models.CollectionBook, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, models.CollectionBook{
			ID:           c.newID(),
			Order:        len(rows) + 1,
			CreatedAt:    ts,
			BookID:       id,
			CollectionID: collectionID,
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := db.CreateInBatches(rows, insertBatch).Error; err != nil {
		return 0, fmt.Errorf("failed to insert members of collection %s: %w", collectionID, err)
	}
	return len(rows), nil
}

// SyncGroup ensures the collection exists and replaces its membership with ids.
func (c *Collections) SyncGroup(ctx context.Context, name, libraryID string, ids []string) (string, error) {
	id, err := c.EnsureGroup(ctx, name, libraryID)
	if err != nil {
		return "", err
	}
	if _, err := c.ReplaceMembership(ctx, id, ids); err != nil {
		return "", err
	}
	return id, nil
}
