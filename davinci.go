// Package davinci is a small client SDK for the OpenAI legacy text
// completion API.
//
// The core entry point is Complete, which asks the davinci completion
// model a question within a caller-supplied context:
//
//	answer, err := davinci.Complete(ctx, apiKey, contextText, question, 100)
//
// The context and question together form the prompt. Providing strong
// context (such as a few high-quality examples of desired behavior)
// makes it easier to obtain desired outputs. MaxTokens caps generation
// including the prompt; a token corresponds to roughly 4 characters of
// common English text, and the remote service is the authority on
// valid ranges.
//
// For callers that want to reuse a configured client across calls, or
// target OpenAI-compatible endpoints, the lower-level
// GenerateCompletion and the openai package expose the same operation
// over the provider.CompletionModel interface.
package davinci

import (
	"context"

	"github.com/ncecere/davinci-go/openai"
	"github.com/ncecere/davinci-go/provider"
	"github.com/ncecere/davinci-go/registry"
)

// Aliases to provider-level types so users can work through the
// davinci package while providers implement the shared interfaces.
type (
	// CompletionModel is a provider-agnostic completion-style model.
	CompletionModel = provider.CompletionModel
)

// Prompt joins a context string and a question into the prompt sent to
// the model. The joining rule is fixed:
//
//	<context>.\nH: <question>.\nIA:
//
// The "H:"/"IA:" markers frame the question as a human turn and cue
// the model to answer as the assistant. Any further formatting inside
// context or question is the caller's responsibility.
func Prompt(contextText, question string) string {
	return contextText + ".\nH: " + question + ".\nIA:"
}

// Complete asks the davinci model a question and returns the generated
// text.
//
// It builds a fresh client for the call, so the API key lives no
// longer than the call itself; it is attached to the request as a
// bearer token and never validated or cached locally. Exactly one
// request is issued per call, with no retries, and the call blocks
// until the response arrives or ctx is canceled.
//
// Errors:
//   - *TransportError if the request could not be completed.
//   - *APIError or *DecodeError if the response is unusable.
//   - ErrNoCompletion if the response contained zero choices.
func Complete(ctx context.Context, apiKey, contextText, question string, maxTokens int) (string, error) {
	client := openai.NewClient(provider.ClientOptions{APIKey: apiKey})
	return CompleteWith(ctx, client.CompletionModel(openai.ModelDavinci), contextText, question, maxTokens)
}

// CompleteWith is Complete generic over the completion model. Use it
// to share one configured client across calls or to target a different
// model or endpoint.
//
// Errors:
//   - ErrMissingModel if model is nil.
//   - Any error returned by the underlying provider implementation.
func CompleteWith(ctx context.Context, model CompletionModel, contextText, question string, maxTokens int) (string, error) {
	req := CompletionRequest{
		Model:     model,
		Prompt:    Prompt(contextText, question),
		MaxTokens: &maxTokens,
	}
	DavinciCallSettings().ApplyTo(&req)

	res, err := GenerateCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// CompletionRequest describes a completion-style text generation request.
type CompletionRequest struct {
	// Model is the completion model used to generate the response.
	Model CompletionModel
	// Prompt is the input text for the completion.
	Prompt string
	// Temperature controls randomness of the output.
	Temperature *float64
	// TopP controls nucleus sampling for the output.
	TopP *float64
	// MaxTokens limits the number of tokens produced, counting the
	// prompt. It is forwarded verbatim; no local clamping is applied.
	MaxTokens *int
	// FrequencyPenalty discourages verbatim repetition.
	FrequencyPenalty *float64
	// PresencePenalty discourages re-mentioning earlier topics.
	PresencePenalty *float64
	// Stop contains stop sequences that will truncate the output.
	Stop []string
	// UserID is an optional identifier used for provider-side logging.
	UserID string
}

// CompletionResponse is the result of a completion-style text generation call.
type CompletionResponse struct {
	// Text is the generated completion text.
	Text string
	// StopReason describes why generation stopped (if available).
	StopReason string
}

// GenerateCompletion calls the underlying CompletionModel.Generate and
// returns a simplified response structure.
//
// Errors:
//   - ErrMissingModel if req.Model is nil.
//   - Any error returned by the underlying provider implementation.
func GenerateCompletion(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	if req.Model == nil {
		return CompletionResponse{}, ErrMissingModel
	}

	cReq := &provider.CompletionRequest{
		Prompt:           req.Prompt,
		Temperature:      req.Temperature,
		TopP:             req.TopP,
		MaxTokens:        req.MaxTokens,
		FrequencyPenalty: req.FrequencyPenalty,
		PresencePenalty:  req.PresencePenalty,
		Stop:             req.Stop,
		UserID:           req.UserID,
	}

	cRes, err := req.Model.Generate(ctx, cReq)
	if err != nil {
		return CompletionResponse{}, err
	}

	return CompletionResponse{
		Text:       cRes.Text,
		StopReason: cRes.StopReason,
	}, nil
}

// GenerateCompletionWithRegistry is a convenience helper that looks up
// the completion model by name in the provided registry and then
// delegates to GenerateCompletion. Any Model value in req is ignored
// and replaced with the resolved model.
//
// Errors:
//   - InvalidArgumentError if reg is nil.
//   - Any error returned by reg.CompletionModel.
//   - Any error returned by GenerateCompletion.
func GenerateCompletionWithRegistry(ctx context.Context, reg registry.Registry, modelName string, req CompletionRequest) (CompletionResponse, error) {
	if reg == nil {
		return CompletionResponse{}, &InvalidArgumentError{Parameter: "reg", Value: nil, Message: "registry must not be nil"}
	}

	model, err := reg.CompletionModel(modelName)
	if err != nil {
		return CompletionResponse{}, err
	}

	req.Model = model
	return GenerateCompletion(ctx, req)
}
