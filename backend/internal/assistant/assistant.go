package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"
	"loop-social/backend/internal/constants"
	apperrors "loop-social/backend/pkg/errors"
	"loop-social/backend/pkg/logger"
	"go.uber.org/zap"
)

// Adapter handles communication with the OpenAI-compatible assistant
// endpoint backing the composer's draft-improvement and place-search
// features. The store has no dependency on this package; failures here
// never touch graph state.
type Adapter struct {
	client *openai.Client
	model  string
	mu     sync.RWMutex // Protects model field for concurrent access
	logger *zap.Logger
}

// NewAdapter creates a new assistant adapter
func NewAdapter(baseURL, apiKey, modelID string) *Adapter {
	// Proxies such as LiteLLM accept any key; keep the client happy
	if apiKey == "" {
		apiKey = "dummy-key"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL + "/v1"

	return &Adapter{
		client: openai.NewClientWithConfig(config),
		model:  modelID,
		logger: logger.Get(),
	}
}

// SetModel updates the model used by this adapter
func (a *Adapter) SetModel(model string) {
	if model != "" {
		a.mu.Lock()
		a.model = model
		a.mu.Unlock()
		a.logger.Debug("Assistant model updated", zap.String("model", model))
	}
}

// GetModel returns the current model
func (a *Adapter) GetModel() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model
}

// ImproveDraft asks the assistant to rework a post draft into something
// more engaging. On failure the error is returned and the caller is
// expected to fall back to the original draft.
func (a *Adapter) ImproveDraft(ctx context.Context, draft string) (string, error) {
	prompt := fmt.Sprintf(`Act as a creative social media assistant for the social network 'Loop'.
Improve or expand the following text draft to make it more engaging, fun and shareable.
Keep the tone casual and use emojis if appropriate. The text must stay short (max %d characters).

Draft: %q`, constants.MaxDraftLength, draft)

	content, err := a.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	improved := strings.TrimSpace(content)
	if improved == "" {
		return "", apperrors.ErrAssistantNoResponse
	}
	return improved, nil
}

// SearchPlaces asks the assistant for place names matching a free-text
// query. Any failure or unparseable response degrades to a single-entry
// list holding the raw query, so the composer always has a location to
// offer.
func (a *Adapter) SearchPlaces(ctx context.Context, query string) []string {
	prompt := fmt.Sprintf(`List %d real places or landmarks matching the query: %q.
Return ONLY the names of the places separated by commas, nothing else.`,
		constants.PlaceSuggestionLimit, query)

	content, err := a.complete(ctx, prompt)
	if err != nil {
		a.logger.Warn("Place search failed, falling back to raw query",
			zap.String("query", query),
			zap.Error(err),
		)
		return []string{query}
	}

	places := parsePlaces(content)
	if len(places) == 0 {
		return []string{query}
	}
	return places
}

// complete runs a single-message chat completion with retries
func (a *Adapter) complete(ctx context.Context, prompt string) (string, error) {
	a.mu.RLock()
	currentModel := a.model
	a.mu.RUnlock()

	req := openai.ChatCompletionRequest{
		Model: currentModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
	}

	// Retry logic with linear backoff
	var resp openai.ChatCompletionResponse
	var err error
	for attempt := 0; attempt < constants.AssistantMaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			a.logger.Warn("Retrying assistant request",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff),
			)
			time.Sleep(backoff)
		}

		resp, err = a.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}

		a.logger.Error("Assistant request failed",
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.String("model", currentModel),
		)
	}
	if err != nil {
		return "", apperrors.NewAssistantRequestFailed(currentModel, constants.AssistantMaxRetries, err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.ErrAssistantNoResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// parsePlaces splits a comma-separated completion into clean place names
func parsePlaces(content string) []string {
	parts := strings.Split(content, ",")
	places := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			places = append(places, name)
		}
	}
	return places
}
