package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cardfolio/cardfolio-api/internal/config"
	"github.com/cardfolio/cardfolio-api/internal/domain"
	"github.com/cardfolio/cardfolio-api/internal/generation"
)

// maxErrorBodyBytes bounds how much of an upstream error body is attached to
// errors for logging.
const maxErrorBodyBytes = 4 << 10

// Generator implements generation.CardGenerator using the Gemini
// generateContent REST API.
type Generator struct {
	logger     *slog.Logger
	config     config.LLMConfig
	httpClient *http.Client
}

// NewGenerator creates a Gemini-backed card generator. The API key may be
// empty; in that case every GenerateCards call fails with
// generation.ErrNotConfigured, which keeps a misconfigured deployment
// running while clearly reporting the problem per request.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Generator{
		logger:     logger,
		config:     cfg,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Ensure Generator implements generation.CardGenerator
var _ generation.CardGenerator = (*Generator)(nil)

// GenerateCards asks the model for count flashcards generated from text.
// It makes exactly one outbound call; retry policy belongs to the caller.
func (g *Generator) GenerateCards(
	ctx context.Context,
	text string,
	count int,
) ([]generation.CandidateCard, error) {
	if g.config.GeminiAPIKey == "" {
		g.logger.ErrorContext(ctx, "Gemini API key is not configured")
		return nil, generation.ErrNotConfigured
	}

	prompt := generation.BuildPrompt(text, count)

	g.logger.DebugContext(ctx, "calling Gemini API",
		slog.String("model", g.config.ModelName),
		slog.Int("text_length", len(text)),
		slog.Int("requested_count", count))

	resp, err := g.call(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cards, err := parseCandidates(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini response failed validation",
			slog.String("error", err.Error()))
		return nil, err
	}

	g.logger.InfoContext(ctx, "Gemini generation succeeded",
		slog.Int("requested_count", count),
		slog.Int("generated_count", len(cards)))

	return cards, nil
}

// call performs the single outbound request and classifies transport and
// status failures. The API key travels in a header so it can never leak
// through URL logging.
func (g *Generator) call(ctx context.Context, prompt string) (*generateContentResponse, error) {
	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType:   "application/json",
			ResponseJSONSchema: generation.ResponseJSONSchema(),
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.config.BaseURL, g.config.ModelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.config.GeminiAPIKey)

	httpResp, err := g.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: request timed out", generation.ErrUpstreamUnavailable)
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrUpstreamUnavailable, err)
	}
	defer func() {
		if closeErr := httpResp.Body.Close(); closeErr != nil {
			g.logger.Warn("failed to close response body", slog.String("error", closeErr.Error()))
		}
	}()

	if httpResp.StatusCode != http.StatusOK {
		return nil, classifyStatus(httpResp.StatusCode, httpResp.Body)
	}

	var resp generateContentResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: undecodable response body: %v",
			generation.ErrMalformedResponse, err)
	}

	return &resp, nil
}

// classifyStatus maps a non-success upstream status to the generation
// package's error taxonomy. The response body is attached only for
// unclassified errors, and only for server-side logs.
func classifyStatus(status int, body io.Reader) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: upstream status %d", generation.ErrUpstreamAuth, status)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: upstream status %d", generation.ErrUpstreamBusy, status)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: upstream status %d", generation.ErrUpstreamUnavailable, status)
	default:
		detail, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
		return fmt.Errorf("%w: upstream status %d: %s", generation.ErrUpstream, status, detail)
	}
}

// parseCandidates extracts the model's text payload from the nested response
// structure, parses it as a JSON array of cards, and validates every entry.
// The returned cards are trimmed so they always re-pass
// domain.ValidateCardContent.
func parseCandidates(resp *generateContentResponse) ([]generation.CandidateCard, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", generation.ErrMalformedResponse)
	}

	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: missing content parts", generation.ErrMalformedResponse)
	}

	text := strings.TrimSpace(cand.Content.Parts[0].Text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty content", generation.ErrMalformedResponse)
	}

	var cards []generation.CandidateCard
	if err := json.Unmarshal([]byte(text), &cards); err != nil {
		// A syntactically valid payload of the wrong shape is an invalid
		// card list; anything unparseable is an invalid format.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: payload is not a card array", generation.ErrInvalidCards)
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidFormat, err)
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: model generated no cards", generation.ErrInvalidCards)
	}

	invalid := 0
	for i := range cards {
		cards[i].Question = strings.TrimSpace(cards[i].Question)
		cards[i].Answer = strings.TrimSpace(cards[i].Answer)
		if err := domain.ValidateCardContent(cards[i].Question, cards[i].Answer); err != nil {
			invalid++
		}
	}

	if invalid > 0 {
		return nil, fmt.Errorf("%w: %d invalid card(s)", generation.ErrInvalidCards, invalid)
	}

	return cards, nil
}

// isTimeout reports whether a transport error was caused by the client
// timeout or a context deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
