// Package utils provides general-purpose helpers used across the proxy:
// JSON response writing and HTTP client initialization.
package utils
