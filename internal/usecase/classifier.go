package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/domain/repository"
	"flightquery-service/pkg/logger"
	"flightquery-service/pkg/metrics"
	"flightquery-service/pkg/utils"
	"flightquery-service/templates"
)

// Keyword lists for the deterministic fallback classifier.
var (
	aviationKeywords = []string{
		"flight", "airport", "airline", "plane", "aircraft",
		"departure", "arrival", "terminal", "gate", "runway",
	}
	departureKeywords = []string{"fly to", "go to", "destination", "departing", "leaving"}
	arrivalKeywords   = []string{"from", "arriving"}
)

// ModeClassifier decides whether a question is aviation-relevant and which
// schedule mode answers it. Classification never fails: LLM errors degrade
// to a safe default and unparseable replies to a keyword heuristic.
type ModeClassifier struct {
	llm     repository.CompletionRepository
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewModeClassifier creates a new mode classifier.
func NewModeClassifier(llm repository.CompletionRepository, logger logger.Logger, metrics *metrics.Metrics) *ModeClassifier {
	return &ModeClassifier{
		llm:     llm,
		logger:  logger,
		metrics: metrics,
	}
}

// classificationReply is the JSON object the model is asked to return.
type classificationReply struct {
	Relevant   *bool  `json:"relevant"`
	Mode       string `json:"mode"`
	Reasoning  string `json:"reasoning"`
	Confidence string `json:"confidence"`
}

// Classify runs the LLM classification with its two fallback tiers.
func (c *ModeClassifier) Classify(ctx context.Context, question, airportCode string) entity.ModeAnalysis {
	messages := []entity.ChatMessage{
		{Role: "user", Content: templates.BuildClassificationPrompt(question, airportCode)},
	}
	opts := entity.CompletionOptions{
		MaxTokens:   200,
		Temperature: 0.1,
		TopP:        1,
	}

	c.metrics.UpstreamCalls.WithLabelValues("llm_classify").Inc()
	reply, err := c.llm.Complete(ctx, messages, opts)
	if err != nil {
		// This stage must never block the pipeline. Route through
		// arrivals at low confidence and let the fetch proceed.
		c.metrics.ErrorsCount.WithLabelValues("classify").Inc()
		c.logger.Warn("Classification call failed, using error fallback", "error", err)
		return entity.ModeAnalysis{
			Relevant:   true,
			Mode:       entity.ModeArrivals,
			Reasoning:  "classification unavailable, defaulted to arrivals",
			Confidence: entity.ConfidenceLow,
		}
	}

	analysis, ok := c.parseReply(reply)
	if !ok {
		c.metrics.ClassifierFallbacks.Inc()
		c.logger.Warn("Classification reply not parseable, using keyword fallback", "reply", reply)
		return c.keywordFallback(question)
	}

	c.logger.Info("Question classified",
		"relevant", analysis.Relevant,
		"mode", analysis.Mode,
		"confidence", analysis.Confidence)

	return analysis
}

// parseReply extracts and decodes the JSON object from the model reply,
// tolerating surrounding prose.
func (c *ModeClassifier) parseReply(reply string) (entity.ModeAnalysis, bool) {
	jsonText, found := utils.ExtractJSONObject(reply)
	if !found {
		return entity.ModeAnalysis{}, false
	}

	var parsed classificationReply
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return entity.ModeAnalysis{}, false
	}
	if parsed.Relevant == nil {
		return entity.ModeAnalysis{}, false
	}

	if !*parsed.Relevant {
		return entity.ModeAnalysis{
			Relevant:      false,
			Mode:          entity.ModeNone,
			Reasoning:     parsed.Reasoning,
			Confidence:    parseConfidence(parsed.Confidence),
			ShouldSkipAPI: true,
		}, true
	}

	mode := entity.Mode(parsed.Mode)
	if !mode.Valid() {
		return entity.ModeAnalysis{}, false
	}

	return entity.ModeAnalysis{
		Relevant:   true,
		Mode:       mode,
		Reasoning:  parsed.Reasoning,
		Confidence: parseConfidence(parsed.Confidence),
	}, true
}

// keywordFallback is the deterministic classifier used when the model's
// reply cannot be decoded.
func (c *ModeClassifier) keywordFallback(question string) entity.ModeAnalysis {
	lower := strings.ToLower(question)

	// Direction-oriented phrases imply an aviation question even when no
	// generic aviation keyword appears ("Which cities does BA fly to?").
	relevant := containsAny(lower, aviationKeywords) ||
		containsAny(lower, departureKeywords) ||
		containsAny(lower, arrivalKeywords)
	if !relevant {
		return entity.ModeAnalysis{
			Relevant:      false,
			Mode:          entity.ModeNone,
			Reasoning:     "no aviation keyword found in question",
			Confidence:    entity.ConfidenceMedium,
			ShouldSkipAPI: true,
		}
	}

	mode := entity.ModeBoth
	reasoning := "aviation question with ambiguous scope"
	switch {
	case containsAny(lower, departureKeywords):
		mode = entity.ModeDepartures
		reasoning = "destination-oriented keywords suggest departures"
	case containsAny(lower, arrivalKeywords):
		mode = entity.ModeArrivals
		reasoning = "origin-oriented keywords suggest arrivals"
	}

	return entity.ModeAnalysis{
		Relevant:   true,
		Mode:       mode,
		Reasoning:  reasoning,
		Confidence: entity.ConfidenceMedium,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func parseConfidence(s string) entity.Confidence {
	switch entity.Confidence(strings.ToLower(s)) {
	case entity.ConfidenceHigh:
		return entity.ConfidenceHigh
	case entity.ConfidenceLow:
		return entity.ConfidenceLow
	default:
		return entity.ConfidenceMedium
	}
}
