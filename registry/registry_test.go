package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/ncecere/davinci-go/provider"
)

type stubModel struct{ text string }

func (s *stubModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	return &provider.CompletionResponse{Text: s.text}, nil
}

func TestInMemoryRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewInMemoryRegistry()
	model := &stubModel{text: "a"}

	reg.RegisterCompletionModel("completion:default", model)

	got, err := reg.CompletionModel("completion:default")
	if err != nil {
		t.Fatalf("CompletionModel error: %v", err)
	}
	if got != model {
		t.Fatalf("unexpected model returned")
	}
}

func TestInMemoryRegistry_UnknownName(t *testing.T) {
	reg := NewInMemoryRegistry()

	_, err := reg.CompletionModel("missing")
	var notFound *NoSuchModelError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NoSuchModelError, got %v", err)
	}
	if notFound.Name != "missing" {
		t.Fatalf("unexpected name in error: %q", notFound.Name)
	}
}

func TestInMemoryRegistry_NilModelRemoves(t *testing.T) {
	reg := NewInMemoryRegistry()
	reg.RegisterCompletionModel("m", &stubModel{})
	reg.RegisterCompletionModel("m", nil)

	if _, err := reg.CompletionModel("m"); err == nil {
		t.Fatalf("expected lookup to fail after removal")
	}
}
