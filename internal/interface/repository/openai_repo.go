package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"flightquery-service/internal/domain/apperr"
	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/domain/repository"
	"flightquery-service/pkg/logger"
)

// OpenAIRepository calls the chat-completion API.
type OpenAIRepository struct {
	logger  logger.Logger
	client  *http.Client
	baseURL string
	model   string
}

// NewOpenAIRepository creates a new completion repository. The API key is
// attached through an oauth2 static token source so every request carries
// the bearer header.
func NewOpenAIRepository(baseURL, apiKey, model string, timeout time.Duration, logger logger.Logger) repository.CompletionRepository {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
	client := oauth2.NewClient(context.Background(), source)
	client.Timeout = timeout

	return &OpenAIRepository{
		logger:  logger,
		client:  client,
		baseURL: baseURL,
		model:   model,
	}
}

type completionRequest struct {
	Model            string               `json:"model"`
	Messages         []entity.ChatMessage `json:"messages"`
	MaxTokens        int                  `json:"max_tokens,omitempty"`
	Temperature      float64              `json:"temperature"`
	TopP             float64              `json:"top_p,omitempty"`
	FrequencyPenalty float64              `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64              `json:"presence_penalty,omitempty"`
}

// Complete sends the messages and returns the first choice's text.
func (r *OpenAIRepository) Complete(ctx context.Context, messages []entity.ChatMessage, opts entity.CompletionOptions) (string, error) {
	reqBody := completionRequest{
		Model:            r.model,
		Messages:         messages,
		MaxTokens:        opts.MaxTokens,
		Temperature:      opts.Temperature,
		TopP:             opts.TopP,
		FrequencyPenalty: opts.FrequencyPenalty,
		PresencePenalty:  opts.PresencePenalty,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperr.Upstream(apperr.CodeLLMAPIError, "failed to marshal completion request", err)
	}

	url := fmt.Sprintf("%s/chat/completions", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", apperr.Upstream(apperr.CodeLLMAPIError, "failed to build completion request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", apperr.Timeout("completion request timed out", err)
		}
		return "", apperr.Upstream(apperr.CodeLLMAPIError, "completion request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error struct {
				Message string `json:"message"`
				Code    string `json:"code"`
			} `json:"error"`
		}
		// Best effort; the status code alone decides the error kind.
		_ = json.NewDecoder(resp.Body).Decode(&errBody)

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return "", apperr.UpstreamAuth(apperr.CodeLLMAPIError, "LLM API rejected credentials", fmt.Errorf("status %d: %s", resp.StatusCode, errBody.Error.Message))
		case resp.StatusCode == http.StatusTooManyRequests && errBody.Error.Code == "insufficient_quota":
			return "", apperr.QuotaExceeded("LLM API quota exhausted", fmt.Errorf("status %d: %s", resp.StatusCode, errBody.Error.Message))
		case resp.StatusCode == http.StatusTooManyRequests:
			return "", apperr.UpstreamRateLimit("LLM API rate limit exceeded", fmt.Errorf("status %d: %s", resp.StatusCode, errBody.Error.Message))
		default:
			return "", apperr.Upstream(apperr.CodeLLMAPIError, fmt.Sprintf("LLM API returned status %d", resp.StatusCode), fmt.Errorf("%s", errBody.Error.Message))
		}
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", apperr.Upstream(apperr.CodeLLMAPIError, "failed to decode completion response", err)
	}

	if len(response.Choices) == 0 {
		return "", nil
	}

	r.logger.Debug("Completion received", "model", r.model, "length", len(response.Choices[0].Message.Content))

	return response.Choices[0].Message.Content, nil
}
