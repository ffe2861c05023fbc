package entity

// Confidence grades how sure the classifier is about its mode choice.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ModeAnalysis is the classifier's verdict on one question.
type ModeAnalysis struct {
	Relevant      bool       `json:"relevant"`
	Mode          Mode       `json:"mode"`
	Reasoning     string     `json:"reasoning"`
	Confidence    Confidence `json:"confidence"`
	ShouldSkipAPI bool       `json:"shouldSkipApi"`
}

// ChatMessage is one role-tagged message in a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionOptions are the sampling parameters of a completion request.
type CompletionOptions struct {
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}
