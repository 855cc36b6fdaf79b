// Package analytics computes the derived views the dashboard charts consume.
//
// Every function here is pure and deterministic: it takes an already-filtered
// table from the dataset package and returns a value, never an error. A
// degenerate input is a degenerate value, not a failure. Zero rows produce
// empty slices or maps; a zero-sum percentage or zero-variance correlation
// produces NaN. Charts render a placeholder for those, so the sentinels must
// survive the trip to the frontend; the Metric type marshals NaN as JSON
// null for that reason.
//
// Group keys with no supporting rows are omitted from the result, never
// zero-filled. A weekday that never occurs in the filtered subset is simply
// absent from the weekly pattern, and an (hour, weekday) cell with no rows is
// absent from the pivot.
package analytics
