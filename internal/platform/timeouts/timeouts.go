// Package timeouts defines shared timeout constants used across the site
// service. Centralizing these values keeps the suggestion display delays and
// server limits discoverable and prevents drift.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SuggestionRelay caps a single POST to the external suggestion endpoint.
const SuggestionRelay = 10 * time.Second

// SuggestionSuccessReset is how long a successful submission outcome stays
// visible before the form returns to idle with cleared fields.
const SuggestionSuccessReset = 4 * time.Second

// SuggestionErrorReset is how long a failed submission outcome stays visible
// before the form returns to idle. Fields are kept for retry.
const SuggestionErrorReset = 3 * time.Second

// SuggestionSessionIdle is how long a visitor's suggestion session survives
// without activity before the janitor closes it.
const SuggestionSessionIdle = 30 * time.Minute
