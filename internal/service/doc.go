// Package service provides application-level services for managing
// folders, cards, and AI-assisted card generation. Services enforce
// ownership, coordinate store calls, and translate store errors into
// the sentinels the API layer maps to HTTP statuses.
package service
