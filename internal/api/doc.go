// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the internal application services, translating HTTP concerns to business
// operations.
//
// Handlers decode and validate JSON bodies through the shared package,
// call the auth or task service, and map returned errors to status codes
// with MapErrorToStatusCode. Validation failures answer 422 with messages
// keyed by field; unknown tasks answer 404 with a JSON null body.
package api
