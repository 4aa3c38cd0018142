// Package books implements the book catalog: listing, detail views and the
// admin create, update and delete procedures.
//
// An update replaces the scalar fields and reconciles six relation kinds
// (authors, categories, tags, series, variants, images) inside one database
// transaction through core/reconcile. Submitted lists are complete sets: items
// tagged "create" are inserted, items tagged "update" are kept (series order
// and variant fields are rewritten), stored rows missing from the list are
// removed. A failure in any kind rolls back the whole update.
//
// The Assembler turns a preloaded book graph into a BookPreview: join rows are
// flattened into plain lists and decimal prices become float64.
//
// # HTTP Endpoints
//
//   - GET /books : Paged list (filters: category, author, tag, series, q, in_stock; sort).
//   - GET /books/:id : Detail view by id or slug.
//   - POST /admin/books : Create.
//   - PUT /admin/books/:id : Update with relation reconciliation.
//   - DELETE /admin/books/:id : Delete, then remove image objects from storage.
package books
