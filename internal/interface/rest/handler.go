// Package rest exposes the flight query pipeline over HTTP.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"flightquery-service/internal/domain/apperr"
	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/domain/repository"
	"flightquery-service/internal/usecase"
	"flightquery-service/pkg/logger"
)

// QueryService is the orchestrator surface the handler needs.
type QueryService interface {
	HandleQuery(ctx context.Context, req usecase.QueryRequest) (*entity.QueryResponse, error)
}

// Handler serves the inbound flight query API.
type Handler struct {
	queries     QueryService
	airportRepo repository.AirportRepository
	logger      logger.Logger
	version     string
}

// NewHandler creates a new API handler.
func NewHandler(queries QueryService, airportRepo repository.AirportRepository, logger logger.Logger, version string) *Handler {
	return &Handler{
		queries:     queries,
		airportRepo: airportRepo,
		logger:      logger,
		version:     version,
	}
}

// queryErrorResponse is the error payload of the query endpoint.
type queryErrorResponse struct {
	Error    string        `json:"error"`
	Code     string        `json:"code"`
	Airport  string        `json:"airport,omitempty"`
	Question string        `json:"question,omitempty"`
	Metadata errorMetadata `json:"metadata"`
}

type errorMetadata struct {
	ResponseTimeMs int64     `json:"responseTimeMs"`
	Timestamp      time.Time `json:"timestamp"`
}

// Query handles POST /api/flights/query.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req usecase.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeQueryError(w, req, start, apperr.Validation(apperr.CodeInvalidQuestion, "request body must be valid JSON"))
		return
	}

	response, err := h.queries.HandleQuery(r.Context(), req)
	if err != nil {
		h.writeQueryError(w, req, start, apperr.From(err))
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}

// Airports handles GET /api/flights/airports.
func (h *Handler) Airports(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	airports, err := h.airportRepo.ListSupported(r.Context())
	if err != nil {
		h.writeQueryError(w, usecase.QueryRequest{}, start, apperr.Internal("failed to list airports", err))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"airports": airports,
		"count":    len(airports),
	})
}

// Health handles GET /api/flights/health. It reports liveness only and
// does not probe the upstream APIs.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "flightquery-service",
		"version":   h.version,
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) writeQueryError(w http.ResponseWriter, req usecase.QueryRequest, start time.Time, appErr *apperr.Error) {
	h.logger.Warn("Query failed",
		"airport", req.Airport,
		"code", appErr.Code,
		"status", appErr.HTTPStatus(),
		"error", appErr.Error())

	h.writeJSON(w, appErr.HTTPStatus(), queryErrorResponse{
		Error:    appErr.Message,
		Code:     appErr.Code,
		Airport:  req.Airport,
		Question: req.Question,
		Metadata: errorMetadata{
			ResponseTimeMs: time.Since(start).Milliseconds(),
			Timestamp:      time.Now().UTC(),
		},
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
