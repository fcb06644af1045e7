// Package normalize turns free-text identifiers from the best-seller source into comparable
// canonical forms.
//
// Every function here is pure and total: empty input yields empty output, and nothing ever
// fails. Matching against the catalog is deterministic; there is no fuzzy string distance.
//
// # Functions
//
//   - ISBN: keeps digits and X, lowercased ("978-0-316" -> "9780316").
//   - Title: collapses whitespace and lowercases (" The  Fox " -> "the fox").
//   - AuthorLikePattern: builds a LIKE pattern with a wildcard between every token.
//   - ParseAuthors: splits contributor strings such as "by A and B" into names.
//   - MergeKey: the deduplication key used when unioning source lists.
package normalize
