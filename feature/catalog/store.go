package catalog

import (
	"context"
	"errors"
	"fmt"

	"bestseller-sync/core/normalize"
	"bestseller-sync/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrScopeNotFound is returned when the configured library does not exist.
	ErrScopeNotFound = errors.New("library not found")
	// ErrCollectionNotFound is returned when a collection does not exist in the library.
	ErrCollectionNotFound = errors.New("collection not found")
)

const (
	isbnExpr    = "REPLACE(REPLACE(LOWER(COALESCE(books.isbn, '')), '-', ''), ' ', '') = ?"
	inLibrary   = "EXISTS (SELECT 1 FROM libraryItems li WHERE li.mediaId = books.id AND li.libraryId = ?)"
	byAuthorPat = "EXISTS (SELECT 1 FROM bookAuthors ba JOIN authors a ON a.id = ba.authorId WHERE ba.bookId = books.id AND LOWER(a.name) LIKE ?)"
)

// Store reads the catalog. Lookups return ("", false, nil) on a miss;
// only query failures are errors.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over db, which may be a transaction.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LibraryID returns the id of the library named name.
func (s *Store) LibraryID(ctx context.Context, name string) (string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.Library{}).
		Where("name = ?", name).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return "", fmt.Errorf("failed to look up library %q: %w", name, err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("%w: libraries.name=%q", ErrScopeNotFound, name)
	}
	return ids[0], nil
}

// FindByISBN finds a book of the library whose stored ISBN, ignoring hyphens, spaces and
// case, equals the normalized isbn.
func (s *Store) FindByISBN(ctx context.Context, isbn, libraryID string) (string, bool, error) {
	n := normalize.ISBN(isbn)
	if n == "" {
		return "", false, nil
	}

	var ids []string
	err := s.db.WithContext(ctx).Model(&models.Book{}).
		Where(isbnExpr, n).
		Where(inLibrary, libraryID).
		Limit(1).
		Pluck("books.id", &ids).Error
	if err != nil {
		return "", false, fmt.Errorf("isbn lookup failed: %w", err)
	}
	if len(ids) == 0 {
		return "", false, nil
	}
	return ids[0], true, nil
}

// FindByTitleAuthor finds a book of the library with exactly the normalized title and an
// author matching the LIKE pattern. With unique set, a match on more than one book is a miss.
func (s *Store) FindByTitleAuthor(ctx context.Context, title, pattern, libraryID string, unique bool) (string, bool, error) {
	limit := 1
	if unique {
		limit = 2
	}

	var ids []string
	err := s.db.WithContext(ctx).Model(&models.Book{}).
		Distinct("books.id").
		Where("LOWER(books.title) = ?", title).
		Where(byAuthorPat, pattern).
		Where(inLibrary, libraryID).
		Limit(limit).
		Pluck("books.id", &ids).Error
	if err != nil {
		return "", false, fmt.Errorf("title/author lookup failed: %w", err)
	}
	if len(ids) == 0 || (unique && len(ids) > 1) {
		return "", false, nil
	}
	return ids[0], true, nil
}

// CollectionSummary is a collection of the library and its member count.
type CollectionSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Books     int    `json:"books"`
	UpdatedAt string `json:"updated_at"`
}

// Collections lists the collections of a library by name.
func (s *Store) Collections(ctx context.Context, libraryID string) ([]CollectionSummary, error) {
	out := []CollectionSummary{}
	err := s.db.WithContext(ctx).Model(&models.Collection{}).
		Select("collections.id AS id, collections.name AS name, collections.updatedAt AS updated_at, COUNT(cb.id) AS books").
		Joins("LEFT JOIN collectionBooks cb ON cb.collectionId = collections.id").
		Where("collections.libraryId = ?", libraryID).
		Group("collections.id, collections.name, collections.updatedAt").
		Order("collections.name").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return out, nil
}

// Member is one book of a collection, in collection order.
type Member struct {
	Order  int    `json:"order"`
	BookID string `json:"book_id"`
	Title  string `json:"title"`
}

// CollectionDetail is a collection and its ordered membership.
type CollectionDetail struct {
	CollectionSummary
	Members []Member `json:"members"`
}

// Collection returns the named collection of a library with its members.
func (s *Store) Collection(ctx context.Context, libraryID, name string) (*CollectionDetail, error) {
	db := s.db.WithContext(ctx)

	var c models.Collection
	res := db.Where("name = ? AND libraryId = ?", name, libraryID).Limit(1).Find(&c)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to look up collection %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}

	members := []Member{}
	err := db.Model(&models.CollectionBook{}).
		Select(`collectionBooks."order" AS "order", collectionBooks.bookId AS book_id, COALESCE(b.title, '') AS title`).
		Joins("LEFT JOIN books b ON b.id = collectionBooks.bookId").
		Where("collectionBooks.collectionId = ?", c.ID).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "collectionBooks", Name: "order"}}).
		Scan(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load members of %q: %w", name, err)
	}

	return &CollectionDetail{
		CollectionSummary: CollectionSummary{
			ID:        c.ID,
			Name:      c.Name,
			Books:     len(members),
			UpdatedAt: c.UpdatedAt,
		},
		Members: members,
	}, nil
}
