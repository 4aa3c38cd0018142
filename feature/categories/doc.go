// Package categories manages the category hierarchy.
//
// Categories form a forest through ParentID. BuildTree turns the flat table
// into nested nodes; the built tree is cached with a TTL and rebuilt once under
// concurrent misses (single flight). Every mutation invalidates it.
//
// Name, code and slug are unique. A conflict is reported as UNPROCESSABLE with
// the offending field in the error details.
//
// # HTTP Endpoints
//
//   - GET /categories : Flat list.
//   - GET /categories/tree : Nested tree.
//   - GET /categories/:id : Single category by id or slug.
//   - POST /admin/categories, PUT /admin/categories/:id, DELETE /admin/categories/:id.
package categories
