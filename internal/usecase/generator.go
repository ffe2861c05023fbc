package usecase

import (
	"context"

	"flightquery-service/internal/domain/apperr"
	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/domain/repository"
	"flightquery-service/pkg/logger"
	"flightquery-service/pkg/metrics"
	"flightquery-service/templates"
)

// AnswerGenerator turns the aggregated schedule and the question into a
// natural-language answer.
type AnswerGenerator struct {
	llm         repository.CompletionRepository
	airportRepo repository.AirportRepository
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// NewAnswerGenerator creates a new answer generator.
func NewAnswerGenerator(llm repository.CompletionRepository, airportRepo repository.AirportRepository, logger logger.Logger, metrics *metrics.Metrics) *AnswerGenerator {
	return &AnswerGenerator{
		llm:         llm,
		airportRepo: airportRepo,
		logger:      logger,
		metrics:     metrics,
	}
}

// GenerateAnswer builds the persona and data prompts, calls the LLM and
// requires a non-empty reply.
func (g *AnswerGenerator) GenerateAnswer(ctx context.Context, question, airportCode string, raw *entity.RawScheduleResult, agg *entity.AggregatedSchedule, summary *entity.ScheduleSummary) (string, error) {
	airport, err := g.airportRepo.GetByCode(ctx, airportCode)
	if err != nil {
		// Metadata is an enrichment; the answer still works without it.
		g.logger.Warn("Airport metadata unavailable", "airport", airportCode, "error", err)
		airport = &entity.Airport{Code: airportCode}
	}

	messages := []entity.ChatMessage{
		{Role: "system", Content: templates.AnswerPersona},
		{Role: "user", Content: templates.BuildAnswerPrompt(question, airport, raw, agg, summary, TopN)},
	}
	opts := entity.CompletionOptions{
		MaxTokens:        800,
		Temperature:      0.7,
		TopP:             1,
		FrequencyPenalty: 0.2,
		PresencePenalty:  0.1,
	}

	g.metrics.UpstreamCalls.WithLabelValues("llm_generate").Inc()
	answer, err := g.llm.Complete(ctx, messages, opts)
	if err != nil {
		g.metrics.ErrorsCount.WithLabelValues("generate_answer").Inc()
		return "", err
	}

	if answer == "" {
		g.metrics.ErrorsCount.WithLabelValues("generate_answer").Inc()
		return "", apperr.Generation("LLM returned an empty answer")
	}

	g.logger.Info("Answer generated", "airport", airportCode, "length", len(answer))

	return answer, nil
}
