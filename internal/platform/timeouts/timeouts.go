// Package timeouts holds the durations shared by the dashboard process.
package timeouts

import "time"

// ContentRequest bounds one page's calls to the content backend.
const ContentRequest = 10 * time.Second

// HTTPClient bounds a single round trip to the content API.
const HTTPClient = 15 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server drains in-flight requests.
const Shutdown = 5 * time.Second
