// Package config loads and validates the application configuration.
//
// Configuration comes from three layers, later layers overriding earlier
// ones:
//
//  1. Built-in defaults (Default)
//  2. An optional bikepulse.yml file in the working directory
//  3. BIKE_* environment variables (e.g. BIKE_SERVER_PORT,
//     BIKE_DATASET_DAY_FILE)
//
// The only external inputs the service needs are the paths of the two source
// tables; everything else tunes the HTTP server, logging and rate limiting.
package config
