// Package domain contains the core business entities, value objects, and
// domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// All input validation rules live here as package-level functions so that
// every entry point (HTTP handlers, services, the generation gateway)
// enforces identical constraints.
package domain
