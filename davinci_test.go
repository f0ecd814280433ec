package davinci

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncecere/davinci-go/provider"
)

type fakeCompletionModel struct {
	lastReq *provider.CompletionRequest
	res     *provider.CompletionResponse
	err     error
}

func (f *fakeCompletionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func TestPrompt_JoinsContextAndQuestion(t *testing.T) {
	got := Prompt("The assistant is helpful", "Hello, who are you?")
	want := "The assistant is helpful.\nH: Hello, who are you?.\nIA:"
	if got != want {
		t.Fatalf("unexpected prompt:\n got: %q\nwant: %q", got, want)
	}

	// The rule is deterministic; empty parts are joined all the same.
	if got := Prompt("", ""); got != ".\nH: .\nIA:" {
		t.Fatalf("unexpected prompt for empty inputs: %q", got)
	}
}

func TestGenerateCompletion_MissingModel(t *testing.T) {
	_, err := GenerateCompletion(context.Background(), CompletionRequest{Prompt: "hi"})
	if !errors.Is(err, ErrMissingModel) {
		t.Fatalf("expected ErrMissingModel, got %v", err)
	}
}

func TestGenerateCompletion_MapsRequestAndResponse(t *testing.T) {
	temp := 0.7
	maxTokens := 42
	fake := &fakeCompletionModel{
		res: &provider.CompletionResponse{Text: "generated", StopReason: "stop"},
	}

	res, err := GenerateCompletion(context.Background(), CompletionRequest{
		Model:       fake,
		Prompt:      "once upon a time",
		Temperature: &temp,
		MaxTokens:   &maxTokens,
		Stop:        []string{"\n"},
	})
	if err != nil {
		t.Fatalf("GenerateCompletion error: %v", err)
	}

	if fake.lastReq.Prompt != "once upon a time" {
		t.Fatalf("prompt not propagated: %q", fake.lastReq.Prompt)
	}
	if fake.lastReq.Temperature == nil || *fake.lastReq.Temperature != temp {
		t.Fatalf("temperature not propagated: %+v", fake.lastReq.Temperature)
	}
	if fake.lastReq.MaxTokens == nil || *fake.lastReq.MaxTokens != maxTokens {
		t.Fatalf("max tokens not propagated: %+v", fake.lastReq.MaxTokens)
	}
	if res.Text != "generated" || res.StopReason != "stop" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestCompleteWith_AppliesPromptAndSettings(t *testing.T) {
	maxTokens := 100
	fake := &fakeCompletionModel{
		res: &provider.CompletionResponse{Text: " I am an AI."},
	}

	text, err := CompleteWith(context.Background(), fake, "You are friendly", "Who are you?", maxTokens)
	if err != nil {
		t.Fatalf("CompleteWith error: %v", err)
	}
	if text != " I am an AI." {
		t.Fatalf("unexpected text: %q", text)
	}

	req := fake.lastReq
	if req.Prompt != "You are friendly.\nH: Who are you?.\nIA:" {
		t.Fatalf("unexpected prompt: %q", req.Prompt)
	}
	if req.MaxTokens == nil || *req.MaxTokens != maxTokens {
		t.Fatalf("max tokens not forwarded: %+v", req.MaxTokens)
	}
	if req.Temperature == nil || *req.Temperature != 0.9 {
		t.Fatalf("davinci temperature not applied: %+v", req.Temperature)
	}
	if req.PresencePenalty == nil || *req.PresencePenalty != 0.6 {
		t.Fatalf("davinci presence penalty not applied: %+v", req.PresencePenalty)
	}
	if len(req.Stop) != 1 || req.Stop[0] != "\n" {
		t.Fatalf("davinci stop sequence not applied: %+v", req.Stop)
	}
}

func TestCompleteWith_PropagatesModelError(t *testing.T) {
	fake := &fakeCompletionModel{err: provider.ErrNoCompletion}

	text, err := CompleteWith(context.Background(), fake, "ctx", "question", 10)
	if !errors.Is(err, ErrNoCompletion) {
		t.Fatalf("expected ErrNoCompletion, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text on error, got %q", text)
	}
}

func TestComplete_EndToEnd(t *testing.T) {
	var recorded struct {
		Model     string `json:"model"`
		Prompt    string `json:"prompt"`
		MaxTokens int    `json:"max_tokens"`
	}
	var recordedAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		recordedAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&recorded); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"text":" Hello there.","finish_reason":"stop"}]}`)
	}))
	defer ts.Close()

	t.Setenv("OPENAI_BASE_URL", ts.URL)

	text, err := Complete(context.Background(), "sk-test", "Be brief", "Say hello", 50)
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if text != " Hello there." {
		t.Fatalf("unexpected text: %q", text)
	}
	if recordedAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header: %q", recordedAuth)
	}
	if recorded.Model != "text-davinci-003" {
		t.Fatalf("unexpected model: %q", recorded.Model)
	}
	if recorded.Prompt != "Be brief.\nH: Say hello.\nIA:" {
		t.Fatalf("unexpected prompt: %q", recorded.Prompt)
	}
	if recorded.MaxTokens != 50 {
		t.Fatalf("unexpected max_tokens: %d", recorded.MaxTokens)
	}
}

func TestCallSettings_ApplyToDoesNotOverrideUnset(t *testing.T) {
	temp := 0.2
	req := CompletionRequest{Temperature: &temp}

	var s *CallSettings
	s.ApplyTo(&req) // nil settings are a no-op

	(&CallSettings{Stop: []string{"END"}}).ApplyTo(&req)
	if req.Temperature == nil || *req.Temperature != 0.2 {
		t.Fatalf("temperature overridden: %+v", req.Temperature)
	}
	if len(req.Stop) != 1 || req.Stop[0] != "END" {
		t.Fatalf("stop not applied: %+v", req.Stop)
	}
}

func TestNewCallSettings_Validation(t *testing.T) {
	bad := 3.0
	_, err := NewCallSettings(&bad, nil, nil, nil, nil)
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) || invalid.Parameter != "temperature" {
		t.Fatalf("expected temperature InvalidArgumentError, got %v", err)
	}

	topP := 0.0
	_, err = NewCallSettings(nil, &topP, nil, nil, nil)
	if !errors.As(err, &invalid) || invalid.Parameter != "topP" {
		t.Fatalf("expected topP InvalidArgumentError, got %v", err)
	}

	temp := 0.9
	okTopP := 1.0
	cs, err := NewCallSettings(&temp, &okTopP, nil, nil, []string{"\n"})
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if cs.Temperature == nil || *cs.Temperature != 0.9 {
		t.Fatalf("settings not populated: %+v", cs)
	}
}
