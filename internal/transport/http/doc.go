// Package http contains the HTTP transport layer: chi routers and handlers
// that decode filter criteria from query parameters, call the dashboard
// service and render the derived views as JSON.
//
// Every dashboard endpoint accepts the same filter parameters:
//
//	year    - single calendar year, e.g. year=2011
//	season  - season label, repeatable, e.g. season=Winter&season=Spring
//	weather - weather label, repeatable
//	from,to - inclusive date bounds in YYYY-MM-DD
//
// Degenerate aggregations (no matching rows, undefined percentages or
// correlations) are successful responses carrying empty collections or null
// metrics; the frontend renders placeholders for them. Only malformed
// parameters (400) and a failed dataset load (503) produce error responses.
package http
