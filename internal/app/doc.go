// Package app provides application initialization and lifecycle management.
// It wires configuration, logging, telemetry, the dataset store and the HTTP
// transport together at startup and handles graceful shutdown.
//
// The initialization sequence:
//
//	1. Load configuration from the YAML file and environment
//	2. Initialize structured logging and OpenTelemetry metrics
//	3. Create the dataset store and load both source tables
//	4. Initialize the dashboard service
//	5. Set up HTTP handlers and middleware
//	6. Configure the HTTP server
//
// Initialization errors are returned to the caller; the package never calls
// os.Exit itself.
package app
