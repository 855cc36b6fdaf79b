// Package services contains the application service layer between the HTTP
// transport and the core packages.
//
// DashboardService runs the full pipeline for every request: load the cached
// tables from the dataset store, narrow them with the filter engine, and
// compute the requested derived view with the analytics package. Each pass
// is cheap and synchronous; there is no per-session state beyond the shared
// read-only tables, so one service instance serves all requests.
package services
