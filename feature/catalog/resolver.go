package catalog

import (
	"context"

	"bestseller-sync/core/normalize"
	"bestseller-sync/core/reconcile"
)

// Lookup is the catalog read contract the resolver needs.
type Lookup interface {
	FindByISBN(ctx context.Context, isbn, libraryID string) (string, bool, error)
	FindByTitleAuthor(ctx context.Context, title, pattern, libraryID string, unique bool) (string, bool, error)
}

// Resolver maps record identities to book ids: ISBN first, then exact title plus author.
type Resolver struct {
	lookup Lookup
	strict bool
}

// NewResolver creates a resolver. With strict set, a title+author pattern that matches
// several books in the library leaves the record unresolved.
func NewResolver(lookup Lookup, strict bool) *Resolver {
	return &Resolver{lookup: lookup, strict: strict}
}

// Resolve returns the matching book id, or a zero Resolution when nothing matches.
func (r *Resolver) Resolve(ctx context.Context, id reconcile.Identity, libraryID string) (reconcile.Resolution, error) {
	if normalize.ISBN(id.ISBN) != "" {
		bookID, found, err := r.lookup.FindByISBN(ctx, id.ISBN, libraryID)
		if err != nil {
			return reconcile.Resolution{}, err
		}
		if found {
			return reconcile.Resolution{ID: bookID, Strategy: reconcile.StrategyISBN}, nil
		}
	}

	title := normalize.Title(id.Title)
	if title == "" {
		return reconcile.Resolution{}, nil
	}
	for _, author := range id.Authors {
		pattern := normalize.AuthorLikePattern(author)
		if pattern == "%%" {
			continue
		}
		bookID, found, err := r.lookup.FindByTitleAuthor(ctx, title, pattern, libraryID, r.strict)
		if err != nil {
			return reconcile.Resolution{}, err
		}
		if found {
			return reconcile.Resolution{ID: bookID, Strategy: reconcile.StrategyTitleAuthor}, nil
		}
	}

	return reconcile.Resolution{}, nil
}
