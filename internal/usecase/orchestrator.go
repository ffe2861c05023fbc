package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"flightquery-service/internal/domain/apperr"
	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/domain/repository"
	"flightquery-service/pkg/logger"
	"flightquery-service/pkg/metrics"
	"flightquery-service/templates"
)

// Question length bounds after trimming.
const (
	minQuestionLen = 5
	maxQuestionLen = 500
)

// QueryRequest is the inbound payload of one flight query.
type QueryRequest struct {
	Airport  string `json:"airport"`
	Question string `json:"question"`
	Date     *int   `json:"date,omitempty"`
}

// QueryOrchestrator sequences classify, fetch, aggregate and generate for
// one request and assembles the response payload.
type QueryOrchestrator struct {
	classifier  *ModeClassifier
	fetcher     *ScheduleFetcher
	aggregator  *ScheduleAggregator
	generator   *AnswerGenerator
	airportRepo repository.AirportRepository
	logger      logger.Logger
	metrics     *metrics.Metrics
	dataSource  string
	model       string
}

// NewQueryOrchestrator creates a new query orchestrator. dataSource and
// model are the labels echoed in response metadata.
func NewQueryOrchestrator(
	classifier *ModeClassifier,
	fetcher *ScheduleFetcher,
	aggregator *ScheduleAggregator,
	generator *AnswerGenerator,
	airportRepo repository.AirportRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
	dataSource string,
	model string,
) *QueryOrchestrator {
	return &QueryOrchestrator{
		classifier:  classifier,
		fetcher:     fetcher,
		aggregator:  aggregator,
		generator:   generator,
		airportRepo: airportRepo,
		logger:      logger,
		metrics:     metrics,
		dataSource:  dataSource,
		model:       model,
	}
}

// HandleQuery runs the full pipeline. Errors are always *apperr.Error.
func (o *QueryOrchestrator) HandleQuery(ctx context.Context, req QueryRequest) (*entity.QueryResponse, error) {
	start := time.Now()

	day, err := o.validate(ctx, req)
	if err != nil {
		o.metrics.ErrorsCount.WithLabelValues("validate").Inc()
		return nil, err
	}

	question := strings.TrimSpace(req.Question)

	analysis := o.classifier.Classify(ctx, question, req.Airport)
	if analysis.ShouldSkipAPI || !analysis.Relevant {
		o.metrics.QueriesSkipped.Inc()
		o.logger.Info("Question skipped as not aviation-relevant", "airport", req.Airport)
		return &entity.QueryResponse{
			Airport:  req.Airport,
			Question: question,
			Answer:   templates.FallbackAnswer,
			Analysis: analysis,
			Metadata: o.buildMetadata(start, false),
		}, nil
	}

	raw, err := o.fetcher.FetchSchedule(ctx, entity.ScheduleQuery{
		Airport: req.Airport,
		Day:     day,
		Mode:    analysis.Mode,
	})
	if err != nil {
		return nil, o.wrap(err)
	}

	if raw.TotalFlights() == 0 {
		return nil, apperr.NotFound("no flight data available for " + req.Airport + " on the requested day")
	}

	agg := o.aggregator.AggregateAll(raw)
	summary := o.aggregator.Summarize(agg)

	answer, err := o.generator.GenerateAnswer(ctx, question, req.Airport, raw, agg, summary)
	if err != nil {
		return nil, o.wrap(err)
	}

	o.metrics.QueriesProcessed.Inc()
	o.metrics.ProcessingTime.Observe(time.Since(start).Seconds())

	return &entity.QueryResponse{
		Airport:  req.Airport,
		Question: question,
		Answer:   answer,
		Analysis: analysis,
		Summary:  summary,
		Raw:      raw.Payloads,
		Metadata: o.buildMetadata(start, true),
	}, nil
}

// validate rejects malformed input before any network call and resolves
// the day selector.
func (o *QueryOrchestrator) validate(ctx context.Context, req QueryRequest) (entity.DaySelector, error) {
	airport := strings.TrimSpace(req.Airport)
	if airport == "" {
		return 0, apperr.Validation(apperr.CodeInvalidAirport, "airport code is required")
	}
	if !o.isSupported(ctx, airport) {
		return 0, apperr.Validation(apperr.CodeUnsupportedAirport, "airport "+airport+" is not supported")
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return 0, apperr.Validation(apperr.CodeInvalidQuestion, "question is required")
	}
	if length := utf8.RuneCountInString(question); length < minQuestionLen || length > maxQuestionLen {
		return 0, apperr.Validation(apperr.CodeInvalidQuestionFormat, "question must be between 5 and 500 characters")
	}
	if !containsLetter(question) {
		return 0, apperr.Validation(apperr.CodeInvalidQuestionFormat, "question must contain words")
	}

	day := entity.DayToday
	if req.Date != nil {
		day = entity.DaySelector(*req.Date)
		if !day.Valid() {
			return 0, apperr.Validation(apperr.CodeInvalidDayParameter, "date must be -1, 1 or 2")
		}
	}

	return day, nil
}

func (o *QueryOrchestrator) isSupported(ctx context.Context, airport string) bool {
	supported, err := o.airportRepo.ListSupported(ctx)
	if err != nil {
		return false
	}
	for i := range supported {
		if supported[i].Code == airport {
			return true
		}
	}
	return false
}

func (o *QueryOrchestrator) buildMetadata(start time.Time, apiCalled bool) entity.ResponseMetadata {
	return entity.ResponseMetadata{
		ResponseTimeMs:  time.Since(start).Milliseconds(),
		Timestamp:       time.Now().UTC(),
		DataSource:      o.dataSource,
		Model:           o.model,
		FlightAPICalled: apiCalled,
	}
}

// wrap maps anything the stages did not already type onto the internal
// error kind.
func (o *QueryOrchestrator) wrap(err error) error {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		o.metrics.ErrorsCount.WithLabelValues("internal").Inc()
		o.logger.Error("Unanticipated pipeline error", "error", err)
	}
	return appErr
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
