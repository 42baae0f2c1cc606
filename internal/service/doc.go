// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive their dependencies through constructor injection and depend
// only on the store interfaces, never on a specific infrastructure
// implementation. Expected conditions are reported as sentinel errors or
// *domain.ValidationError values so the API layer can map them to status codes
// with errors.Is and errors.As.
//
// Authentication lives in the auth subpackage.
package service
