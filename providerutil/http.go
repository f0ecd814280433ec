package providerutil

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ncecere/davinci-go/provider"
)

// ReadJSON decodes a JSON response body into v and closes the body.
//
// If the response status code is not in the 2xx range, ReadJSON reads
// a truncated copy of the body and returns a *provider.APIError. If
// the body cannot be decoded into v, it returns a *provider.DecodeError.
// Unknown fields in the body are tolerated; callers decode only the
// fields they consume.
func ReadJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 8*1024))
		return &provider.APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(v); err != nil {
		return &provider.DecodeError{Err: err}
	}
	return nil
}

// DefaultHTTPClient returns the default HTTP client used when none is provided.
func DefaultHTTPClient() *http.Client {
	return http.DefaultClient
}
