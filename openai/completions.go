package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/ncecere/davinci-go/provider"
	"github.com/ncecere/davinci-go/providerutil"
)

// completionModel implements provider.CompletionModel for the OpenAI
// /v1/completions endpoint.
type completionModel struct {
	client *Client
	model  string
}

type openAICompletionRequest struct {
	Model            string   `json:"model"`
	Prompt           string   `json:"prompt"`
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"top_p,omitempty"`
	MaxTokens        *int     `json:"max_tokens,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
	Stop             []string `json:"stop,omitempty"`
	User             string   `json:"user,omitempty"`
}

// openAICompletionResponse decodes only the fields this SDK consumes.
// The real response carries id, object, created, model, and usage as
// well; those are ignored so that new remote fields never break us.
type openAICompletionResponse struct {
	Choices []struct {
		Text         string `json:"text"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Generate performs a single POST to the completions endpoint and
// returns the text of the first choice.
//
// Errors:
//   - *provider.TransportError if the request could not be completed.
//   - *provider.APIError for non-2xx responses.
//   - *provider.DecodeError if the body is not the expected shape.
//   - provider.ErrNoCompletion if the response has zero choices.
func (m *completionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	body := openAICompletionRequest{
		Model:            m.model,
		Prompt:           req.Prompt,
		Temperature:      req.Temperature,
		TopP:             req.TopP,
		MaxTokens:        req.MaxTokens,
		FrequencyPenalty: req.FrequencyPenalty,
		PresencePenalty:  req.PresencePenalty,
		Stop:             req.Stop,
		User:             req.UserID,
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := m.client.completionsURL()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	// Attach any custom headers first, then enforce required headers.
	for k, vs := range m.client.headers {
		for _, v := range vs {
			if v == "" {
				continue
			}
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.client.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.httpClient.Do(httpReq)
	if err != nil {
		return nil, &provider.TransportError{URL: url, Err: err}
	}

	var out openAICompletionResponse
	if err := providerutil.ReadJSON(resp, &out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, provider.ErrNoCompletion
	}

	choice := out.Choices[0]
	return &provider.CompletionResponse{
		Text:       choice.Text,
		StopReason: choice.FinishReason,
	}, nil
}
