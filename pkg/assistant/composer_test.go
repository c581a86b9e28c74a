package assistant

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/wallysmart/shopping-assistant/internal/domain/product"
	"github.com/wallysmart/shopping-assistant/pkg/assistant/intent"
)

type stubGenerator struct {
	available bool
	reply     *GenerativeReply
	err       error
	called    bool
}

func (s *stubGenerator) Available() bool { return s.available }

func (s *stubGenerator) Generate(ctx context.Context, query string) (*GenerativeReply, error) {
	s.called = true
	return s.reply, s.err
}

func newTestRouter(seed int64) *intent.Router {
	return intent.NewRouter(rand.New(rand.NewSource(seed)), nil)
}

func TestComposeWithoutGenerator(t *testing.T) {
	composer := NewComposer(newTestRouter(1), nil, nil)

	res := composer.Compose(context.Background(), "apple pie ingredients", intent.Context{})
	if res.Source != SourceLocal {
		t.Errorf("source = %q, want %q", res.Source, SourceLocal)
	}
	if _, ok := res.Response.(intent.ProductListResponse); !ok {
		t.Errorf("expected ProductListResponse, got %T", res.Response)
	}
}

func TestComposeUnavailableGeneratorNeverCalled(t *testing.T) {
	gen := &stubGenerator{available: false}
	composer := NewComposer(newTestRouter(1), gen, nil)

	res := composer.Compose(context.Background(), "hello there", intent.Context{})
	if gen.called {
		t.Error("generator should not be called when unavailable")
	}
	if res.Source != SourceLocal {
		t.Errorf("source = %q, want %q", res.Source, SourceLocal)
	}
}

func TestComposeGeneratorFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{available: true, err: errors.New("backend down")}
	composer := NewComposer(newTestRouter(42), gen, nil)

	message := "Show me the price trend for granny smith apples"
	res := composer.Compose(context.Background(), message, intent.Context{})

	if !gen.called {
		t.Fatal("generator should have been tried")
	}
	if res.Source != SourceLocal {
		t.Fatalf("source = %q, want %q", res.Source, SourceLocal)
	}

	// the fallback answer matches what the local router alone produces
	got, ok := res.Response.(intent.TrendResponse)
	if !ok {
		t.Fatalf("expected TrendResponse, got %T", res.Response)
	}
	want := newTestRouter(42).Route(message, intent.Context{}).(intent.TrendResponse)
	if len(got.Chart.Datasets[0].Data) != len(want.Chart.Datasets[0].Data) {
		t.Fatalf("series lengths differ")
	}
	for i := range got.Chart.Datasets[0].Data {
		if got.Chart.Datasets[0].Data[i] != want.Chart.Datasets[0].Data[i] {
			t.Fatalf("fallback diverges from local router at point %d", i)
		}
	}
}

func TestComposeGenerativeReply(t *testing.T) {
	gen := &stubGenerator{
		available: true,
		reply:     &GenerativeReply{Text: "Here you go!"},
	}
	composer := NewComposer(newTestRouter(1), gen, nil)

	res := composer.Compose(context.Background(), "tell me something", intent.Context{})
	if res.Source != SourceGenerative {
		t.Fatalf("source = %q, want %q", res.Source, SourceGenerative)
	}
	text, ok := res.Response.(intent.PlainTextResponse)
	if !ok {
		t.Fatalf("expected PlainTextResponse, got %T", res.Response)
	}
	if text.Text != "Here you go!" {
		t.Errorf("text = %q", text.Text)
	}
}

func TestComposeGenerativeReplyWithProducts(t *testing.T) {
	gen := &stubGenerator{
		available: true,
		reply: &GenerativeReply{
			Text:     "Ingredients for your pie:",
			Products: []product.Product{{ID: "x", Title: "Granny Smith Apples", Price: 3.48}},
		},
	}
	composer := NewComposer(newTestRouter(1), gen, nil)

	res := composer.Compose(context.Background(), "apple pie", intent.Context{})
	if res.Source != SourceGenerative {
		t.Fatalf("source = %q, want %q", res.Source, SourceGenerative)
	}
	listResp, ok := res.Response.(intent.ProductListResponse)
	if !ok {
		t.Fatalf("expected ProductListResponse, got %T", res.Response)
	}
	if len(listResp.Products) != 1 {
		t.Errorf("products = %d, want 1", len(listResp.Products))
	}
}

func TestGeminiGeneratorAvailability(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"your-gemini-api-key-here", false},
		{"real-key", true},
	}

	for _, tt := range tests {
		g := &GeminiGenerator{apiKey: tt.key}
		if got := g.Available(); got != tt.want {
			t.Errorf("Available() with key %q = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestGeneratedProductDefaults(t *testing.T) {
	p := generatedProduct("Mystery Item", "Misc", "", 0)
	if p.Price != 2.99 {
		t.Errorf("price = %v, want 2.99", p.Price)
	}
	if p.Aisle != "1" {
		t.Errorf("aisle = %q, want \"1\"", p.Aisle)
	}
	if p.Availability != product.AvailabilityInStock {
		t.Errorf("availability = %q", p.Availability)
	}
	if p.ID == "" {
		t.Error("expected a synthesized id")
	}
}
