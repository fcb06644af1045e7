package catalog

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"bestseller-sync/core/database"
	"bestseller-sync/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// fixedNow is 18:34:35.791 UTC.
var fixedNow = time.Date(2025, 9, 27, 19, 34, 35, 791_000_000, time.FixedZone("CET", 3600))

func strPtr(s string) *string { return &s }

// setupCatalog creates a temporary SQLite catalog with two libraries:
//
//	lib-books:    b-women (isbn 978-1-250-17863-3, Kristin Hannah)
//	              b-onyx (no isbn, Rebecca Yarros)
//	              b-shining-1, b-shining-2 ("The Shining", Stephen King / Stephen E. King)
//	              cat-42 (isbn 111)
//	lib-podcasts: b-james (isbn 9780385550369, Percival Everett)
func setupCatalog(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Path:              filepath.Join(t.TempDir(), "absdatabase.sqlite"),
		Mode:              "rwc",
		BusyTimeoutMillis: 100,
		Retries:           1,
		BackoffMillis:     1,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	seed := []any{
		&models.Library{ID: "lib-books", Name: "books"},
		&models.Library{ID: "lib-podcasts", Name: "podcasts"},
		&models.Book{ID: "b-women", Title: "The Women", ISBN: strPtr("978-1-250-17863-3")},
		&models.Book{ID: "b-onyx", Title: "Onyx Storm"},
		&models.Book{ID: "b-shining-1", Title: "The Shining"},
		&models.Book{ID: "b-shining-2", Title: "The Shining"},
		&models.Book{ID: "cat-42", Title: "Foo", ISBN: strPtr("111")},
		&models.Book{ID: "b-james", Title: "James", ISBN: strPtr("9780385550369")},
		&models.Author{ID: "a-hannah", Name: "Kristin Hannah", LibraryID: "lib-books"},
		&models.Author{ID: "a-yarros", Name: "Rebecca Yarros", LibraryID: "lib-books"},
		&models.Author{ID: "a-king", Name: "Stephen King", LibraryID: "lib-books"},
		&models.Author{ID: "a-eking", Name: "Stephen E. King", LibraryID: "lib-books"},
		&models.Author{ID: "a-everett", Name: "Percival Everett", LibraryID: "lib-podcasts"},
	}
	links := map[string]string{
		"b-women":     "a-hannah",
		"b-onyx":      "a-yarros",
		"b-shining-1": "a-king",
		"b-shining-2": "a-eking",
		"b-james":     "a-everett",
	}
	libraries := map[string]string{
		"b-women":     "lib-books",
		"b-onyx":      "lib-books",
		"b-shining-1": "lib-books",
		"b-shining-2": "lib-books",
		"cat-42":      "lib-books",
		"b-james":     "lib-podcasts",
	}
	for book, author := range links {
		seed = append(seed, &models.BookAuthor{ID: "ba-" + book, BookID: book, AuthorID: author})
	}
	for book, lib := range libraries {
		seed = append(seed, &models.LibraryItem{ID: "li-" + book, MediaID: book, LibraryID: lib})
	}
	for _, row := range seed {
		require.NoError(t, db.Create(row).Error)
	}

	return db
}

// setupMockDB creates a mock GORM DB for query-failure paths.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// sequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func membership(t *testing.T, db *gorm.DB, collectionID string) []models.CollectionBook {
	t.Helper()
	var rows []models.CollectionBook
	require.NoError(t, db.Where("collectionId = ?", collectionID).Order(`"order"`).Find(&rows).Error)
	return rows
}

func bookIDs(rows []models.CollectionBook) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.BookID
	}
	return out
}
