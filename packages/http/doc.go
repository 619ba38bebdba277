// Package http sends smoke-test requests against a base host.
//
// It wraps the standard library's http package with:
//   - Base URL resolution for relative request paths
//   - Query params, form and JSON bodies
//   - A request id header on every call
//   - JSON field access on responses (response, data, message)
package http
