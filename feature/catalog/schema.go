package catalog

// RequiredSchema lists the tables and columns a sync reads or writes.
func RequiredSchema() map[string][]string {
	return map[string][]string{
		"libraries":       {"id", "name"},
		"books":           {"id", "title", "isbn"},
		"authors":         {"id", "name"},
		"bookAuthors":     {"bookId", "authorId"},
		"libraryItems":    {"mediaId", "libraryId"},
		"collections":     {"id", "name", "description", "createdAt", "updatedAt", "libraryId"},
		"collectionBooks": {"id", "order", "createdAt", "bookId", "collectionId"},
	}
}
