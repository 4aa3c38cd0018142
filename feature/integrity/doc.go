// Package integrity provides operational health checks for the bookstore.
//
// # Checks Provided
//
//   - Schema: compares the gorm schema of every model with the live table
//     (missing tables, missing columns, type drift on columns with a pinned type).
//   - Images: diffs the object keys stored in book_images with the objects under
//     books/ in the bucket. Reports missing objects and orphan objects.
//
// # HTTP Endpoints (admin only)
//
//   - GET /admin/integrity : Runs all checks.
//   - GET /admin/integrity/schema : Runs the schema check.
//   - GET /admin/integrity/images : Runs the image check (supports ?purge=true).
//
// The same checks are available through the `integrity` command.
package integrity
