package bestsellers

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"bestseller-sync/core/normalize"
	"bestseller-sync/core/reconcile"
)

// WorkRecord is one work as it appeared on one list.
type WorkRecord struct {
	Title   string
	Authors []string
	// ISBN is raw text; it is normalized at lookup and merge time.
	ISBN string
	List string
	// Rank is 0 when the source gave no usable rank.
	Rank int
}

// Ranked reports whether the record carries a rank.
func (r WorkRecord) Ranked() bool {
	return r.Rank > 0
}

// Identity exposes the fields used to resolve the record against the catalog.
func (r WorkRecord) Identity() reconcile.Identity {
	return reconcile.Identity{Title: r.Title, Authors: r.Authors, ISBN: r.ISBN}
}

// MergeKey is the deduplication key of the record within a collection.
func (r WorkRecord) MergeKey() string {
	return normalize.MergeKey(r.Title, r.Authors, r.ISBN)
}

// parseRank accepts positive integer literals only.
func parseRank(raw json.RawMessage) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// ExtractList converts every entry of a list into a WorkRecord, in source order.
// Entries are never dropped here, even with an empty title.
func ExtractList(l List) []WorkRecord {
	records := make([]WorkRecord, 0, len(l.Books))
	for _, b := range l.Books {
		author := b.Author
		if strings.TrimSpace(author) == "" {
			author = b.Contributor
		}
		isbn := strings.TrimSpace(b.PrimaryISBN13)
		if isbn == "" {
			isbn = strings.TrimSpace(b.PrimaryISBN10)
		}
		records = append(records, WorkRecord{
			Title:   strings.TrimSpace(b.Title),
			Authors: normalize.ParseAuthors(author),
			ISBN:    isbn,
			List:    l.ID,
			Rank:    parseRank(b.Rank),
		})
	}
	return records
}
