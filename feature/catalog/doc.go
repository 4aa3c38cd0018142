// Package catalog manages the entities books link to: authors, tags and series.
//
// Slugs are unique per entity and derived from the name when not given.
// An entity still linked to a book cannot be deleted; unlink it through the
// book update first.
package catalog
