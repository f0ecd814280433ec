package openai

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ncecere/davinci-go/provider"
	"github.com/ncecere/davinci-go/providerutil"
)

// ModelDavinci is the completion model this SDK targets by default.
const ModelDavinci = "text-davinci-003"

// Client is an OpenAI provider client for the legacy completions API.
//
// It can be configured explicitly via ClientOptions or implicitly via
// environment variables. See NewClient for configuration details. A
// Client is immutable after creation and safe for concurrent use;
// sharing one across calls is purely a performance optimization and
// correctness never depends on it.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient provider.HTTPClient
	headers    http.Header
}

func (c *Client) completionsURL() string {
	if strings.HasSuffix(c.baseURL, "/v1") {
		return c.baseURL + "/completions"
	}
	return c.baseURL + "/v1/completions"
}

// NewClient creates a new OpenAI client.
//
// Environment variables:
//   - OPENAI_BASE_URL (optional, defaults to https://api.openai.com)
//
// The API key is taken from opts verbatim. It is deliberately not
// validated here: an empty or malformed key is forwarded and surfaces
// as the remote service's rejection, never as a local error.
func NewClient(opts provider.ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv("OPENAI_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.openai.com"
		}
	}
	baseURL = strings.TrimRight(baseURL, "/")

	hc := opts.HTTPClient
	if hc == nil {
		hc = providerutil.DefaultHTTPClient()
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     opts.APIKey,
		httpClient: hc,
		headers:    opts.Headers,
	}
}

// CompletionModel returns a CompletionModel for the given completion
// model ID.
func (c *Client) CompletionModel(model string) provider.CompletionModel {
	return &completionModel{client: c, model: model}
}

// WithHTTPTimeout is a helper to wrap the default HTTP client with a
// timeout. The SDK imposes no timeout of its own; callers opt in by
// passing the result as ClientOptions.HTTPClient.
func WithHTTPTimeout(d time.Duration) provider.HTTPClient {
	return &http.Client{Timeout: d}
}
