// Package dataset loads the bike-sharing source tables and holds them in
// memory for the lifetime of the process.
//
// Two delimited text files feed the dashboard: day.csv (one row per calendar
// date) and hour.csv (one row per date and hour). Both carry the same fixed
// header schema from the upstream data source; column names and the integer
// coding of season (1-4), weathersit (1-4) and weekday (0-6) are a contract
// with that source and must not be altered here.
//
// # Loading
//
// The Store reads both files exactly once per process and serves the decoded
// tables from its cache afterwards. Integer category codes are mapped to
// their display labels at load time; codes outside the known range become the
// explicit Unknown label rather than an error, so downstream grouping can
// surface them as their own bucket. A malformed date or numeric field aborts
// the load with a ParseError carrying the file, line and column, since it
// indicates a schema mismatch rather than a bad row worth skipping.
//
// # Immutability
//
// Tables returned by the Store are never mutated after load and are safe to
// share across concurrent readers. Filtering and aggregation operate on
// copies of the row slices, never in place.
package dataset
