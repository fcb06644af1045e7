package models

// Library is a top-level Audiobookshelf library (the sync scope).
type Library struct {
	ID   string `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name"`
}

func (Library) TableName() string {
	return "libraries"
}

// Book is the media row of a book library item.
type Book struct {
	ID    string  `gorm:"primaryKey;column:id"`
	Title string  `gorm:"column:title"`
	ISBN  *string `gorm:"column:isbn"`
}

func (Book) TableName() string {
	return "books"
}

type Author struct {
	ID        string `gorm:"primaryKey;column:id"`
	Name      string `gorm:"column:name"`
	LibraryID string `gorm:"column:libraryId"`
}

func (Author) TableName() string {
	return "authors"
}

type BookAuthor struct {
	ID       string `gorm:"primaryKey;column:id"`
	BookID   string `gorm:"column:bookId"`
	AuthorID string `gorm:"column:authorId"`
}

func (BookAuthor) TableName() string {
	return "bookAuthors"
}

// LibraryItem links a media row (MediaID) to its library.
type LibraryItem struct {
	ID        string `gorm:"primaryKey;column:id"`
	MediaID   string `gorm:"column:mediaId"`
	MediaType string `gorm:"column:mediaType;default:book"`
	LibraryID string `gorm:"column:libraryId"`
}

func (LibraryItem) TableName() string {
	return "libraryItems"
}

// Collection is a named, ordered group of books within a library.
// Timestamps are stored as text, e.g. "2025-09-27 19:34:35.791 +00:00".
type Collection struct {
	ID          string  `gorm:"primaryKey;column:id"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
	CreatedAt   string  `gorm:"column:createdAt;autoCreateTime:false"`
	UpdatedAt   string  `gorm:"column:updatedAt;autoUpdateTime:false"`
	LibraryID   string  `gorm:"column:libraryId"`
}

func (Collection) TableName() string {
	return "collections"
}

// CollectionBook is one membership row. Order is 1-based and gap-free within a collection.
type CollectionBook struct {
	ID           string `gorm:"primaryKey;column:id"`
	Order        int    `gorm:"column:order"`
	CreatedAt    string `gorm:"column:createdAt;autoCreateTime:false"`
	BookID       string `gorm:"column:bookId"`
	CollectionID string `gorm:"column:collectionId"`
}

func (CollectionBook) TableName() string {
	return "collectionBooks"
}

// All returns every model, in dependency order.
func All() []any {
	return []any{
		&Library{},
		&Book{},
		&Author{},
		&BookAuthor{},
		&LibraryItem{},
		&Collection{},
		&CollectionBook{},
	}
}
