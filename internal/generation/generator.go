package generation

import "context"

// CandidateCard is a question/answer pair proposed by the upstream model.
// It has no identity or folder membership yet; those are assigned when the
// card is persisted.
type CandidateCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CardGenerator defines the interface for generating flashcards from text.
// This interface is the boundary between the application core and the
// external LLM service.
//
// Implementations make exactly one outbound call per invocation and do not
// retry internally; retry policy belongs to the caller. Every returned
// candidate has a non-empty question and answer after trimming. The number
// of returned candidates may differ from the requested count.
type CardGenerator interface {
	// GenerateCards asks the upstream model to produce count flashcards from
	// the given source text. The text and count must already satisfy
	// domain.ValidateGenerationRequest; implementations do not re-validate.
	//
	// Errors are classified with the sentinels in this package (see
	// errors.go) so callers can distinguish retryable upstream failures
	// from contract violations and configuration problems.
	GenerateCards(ctx context.Context, text string, count int) ([]CandidateCard, error)
}
