package usecase

import (
	"context"
	"errors"
	"testing"

	"flightquery-service/internal/domain/entity"
	"flightquery-service/pkg/logger"
)

func newTestClassifier(llm *stubCompletionRepo) *ModeClassifier {
	return NewModeClassifier(llm, logger.NewNop(), testMetrics)
}

func TestClassifyParsesCleanJSON(t *testing.T) {
	llm := &stubCompletionRepo{reply: classifierReply(true, "departures", "high")}
	analysis := newTestClassifier(llm).Classify(context.Background(), "Where can I fly to from here?", "DXB")

	if !analysis.Relevant {
		t.Error("Expected relevant=true")
	}
	if analysis.Mode != entity.ModeDepartures {
		t.Errorf("Expected departures, got %s", analysis.Mode)
	}
	if analysis.Confidence != entity.ConfidenceHigh {
		t.Errorf("Expected high confidence, got %s", analysis.Confidence)
	}
	if analysis.ShouldSkipAPI {
		t.Error("Relevant question must not set the skip flag")
	}
}

func TestClassifyExtractsJSONFromProse(t *testing.T) {
	llm := &stubCompletionRepo{
		reply: "Sure, here's my take:\n" + classifierReply(true, "both", "medium") + "\nHope that helps!",
	}
	analysis := newTestClassifier(llm).Classify(context.Background(), "Tell me about flights here", "LHR")

	if analysis.Mode != entity.ModeBoth {
		t.Errorf("Expected both, got %s", analysis.Mode)
	}
}

func TestClassifyIrrelevantSetsSkipFlag(t *testing.T) {
	llm := &stubCompletionRepo{reply: classifierReply(false, "none", "high")}
	analysis := newTestClassifier(llm).Classify(context.Background(), "What's the best pizza nearby?", "CDG")

	if analysis.Relevant {
		t.Error("Expected relevant=false")
	}
	if analysis.Mode != entity.ModeNone {
		t.Errorf("Expected none, got %s", analysis.Mode)
	}
	if !analysis.ShouldSkipAPI {
		t.Error("Expected skip flag for irrelevant question")
	}
}

func TestClassifyErrorFallback(t *testing.T) {
	llm := &stubCompletionRepo{err: errors.New("connection refused")}
	analysis := newTestClassifier(llm).Classify(context.Background(), "How many flights today?", "SIN")

	// Classification must never block the pipeline.
	if !analysis.Relevant {
		t.Error("Error fallback must mark the question relevant")
	}
	if analysis.Mode != entity.ModeArrivals {
		t.Errorf("Expected arrivals default, got %s", analysis.Mode)
	}
	if analysis.Confidence != entity.ConfidenceLow {
		t.Errorf("Expected low confidence, got %s", analysis.Confidence)
	}
}

func TestKeywordFallback(t *testing.T) {
	tests := []struct {
		name         string
		question     string
		wantRelevant bool
		wantMode     entity.Mode
		wantSkip     bool
	}{
		{
			name:         "no aviation keyword",
			question:     "What's the weather like?",
			wantRelevant: false,
			wantMode:     entity.ModeNone,
			wantSkip:     true,
		},
		{
			name:         "destination oriented",
			question:     "Which cities does BA fly to?",
			wantRelevant: true,
			wantMode:     entity.ModeDepartures,
		},
		{
			name:         "origin oriented",
			question:     "How many flights arrived from Germany?",
			wantRelevant: true,
			wantMode:     entity.ModeArrivals,
		},
		{
			name:         "ambiguous aviation question",
			question:     "How busy is the airport today?",
			wantRelevant: true,
			wantMode:     entity.ModeBoth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An unparseable reply forces the keyword tier.
			llm := &stubCompletionRepo{reply: "I could not decide, sorry."}
			analysis := newTestClassifier(llm).Classify(context.Background(), tt.question, "DXB")

			if analysis.Relevant != tt.wantRelevant {
				t.Errorf("Expected relevant=%v, got %v", tt.wantRelevant, analysis.Relevant)
			}
			if analysis.Mode != tt.wantMode {
				t.Errorf("Expected mode %s, got %s", tt.wantMode, analysis.Mode)
			}
			if analysis.ShouldSkipAPI != tt.wantSkip {
				t.Errorf("Expected skip=%v, got %v", tt.wantSkip, analysis.ShouldSkipAPI)
			}
			if analysis.Confidence != entity.ConfidenceMedium {
				t.Errorf("Fallback results must carry medium confidence, got %s", analysis.Confidence)
			}
		})
	}
}

func TestClassifyRejectsInvalidMode(t *testing.T) {
	// A decodable object with a nonsense mode falls through to keywords.
	llm := &stubCompletionRepo{reply: `{"relevant": true, "mode": "sideways", "confidence": "high"}`}
	analysis := newTestClassifier(llm).Classify(context.Background(), "Which airlines fly to this airport?", "AMS")

	if analysis.Confidence != entity.ConfidenceMedium {
		t.Errorf("Expected keyword-fallback confidence, got %s", analysis.Confidence)
	}
	if !analysis.Relevant {
		t.Error("Aviation keywords present, expected relevant=true")
	}
}
