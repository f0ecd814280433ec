package provider

import "context"

// CompletionModel is the provider-level interface for completion-style
// models (legacy /v1/completions APIs).
//
// Implementations map CompletionRequest values to the provider's
// completion API. A Generate call performs exactly one outbound
// request; implementations do not retry, log, or persist anything.
type CompletionModel interface {
	Generate(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest describes inputs for text completions.
//
// Optional parameters are pointer-typed so that explicitly-set zero
// values survive serialization. In particular MaxTokens is forwarded
// verbatim, including zero and negative values; the remote service is
// the authority on valid ranges.
type CompletionRequest struct {
	Model            string
	Prompt           string
	Temperature      *float64
	TopP             *float64
	MaxTokens        *int
	FrequencyPenalty *float64
	PresencePenalty  *float64
	Stop             []string
	UserID           string
}

// CompletionResponse contains the resulting completion text.
type CompletionResponse struct {
	Text       string
	StopReason string
}
