// Package httputil provides small helpers for writing HTTP responses
// with consistent headers and serialization.
package httputil
