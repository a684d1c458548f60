// Package generation provides interfaces and supporting types for interacting
// with external AI/LLM services for flashcard generation. It abstracts the
// details of the LLM API integration (Gemini), allowing the application to
// turn pasted text into candidate cards without coupling to a specific
// external service.
package generation
