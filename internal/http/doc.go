// Package http provides the HTTP client used to fetch configuration
// documents and host pages.
//
// The Client in this package handles:
//   - A configured User-Agent header
//   - Timeout handling
//   - Context cancellation on every request
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch a configuration document
//	raw, err := client.GetString(ctx, "https://example.com/animations.json")
//
//	// Fetch a host page for resolution
//	page, err := client.GetString(ctx, "https://example.com/index.html")
package http
