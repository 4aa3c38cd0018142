// Package models contains the gorm models of the bookstore schema.
//
// Every feature reads and writes through these types; All lists them in
// dependency order for AutoMigrate and for the schema integrity check.
//
// # Tables
//
//   - Catalog: users, authors, categories, tags, series, organizations, contacts.
//   - Books: books, book_authors, book_categories, book_tags, book_series,
//     book_variants, book_images.
//   - Commerce: reviews, cart_items, wishlist_items, orders, order_items.
//
// Join tables use composite primary keys (book id + related id) and carry a
// created_by_id audit column. Money columns are decimal(10,2) backed by
// shopspring/decimal.
package models
