// Package models maps the Audiobookshelf tables touched by a sync.
//
// Only the columns the sync reads or writes are declared. Audiobookshelf owns the schema;
// the models are never migrated against a real catalog, only against test databases.
package models
