package assistant

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/wallysmart/shopping-assistant/internal/domain/product"
)

const (
	geminiModel       = "gemini-2.0-flash"
	apiKeyPlaceholder = "your-gemini-api-key-here"
)

const promptTemplate = `You are WallyAI, a helpful shopping assistant for WallyMart.

User query: %q

Please respond in a helpful, friendly manner. If the user is asking about:
1. Recipe ingredients - list the items needed with estimated prices
2. Product locations - mention aisle numbers when possible
3. Shopping recommendations - suggest specific products

Keep responses concise and actionable for in-store shopping.`

// GenerativeReply is what the generative backend produces for a query
type GenerativeReply struct {
	Text     string
	Products []product.Product
}

// Generator produces free-form replies from an external model
type Generator interface {
	// Available reports whether the backend is configured
	Available() bool
	// Generate asks the backend to answer the user's query
	Generate(ctx context.Context, query string) (*GenerativeReply, error)
}

// GeminiGenerator talks to the Gemini API
type GeminiGenerator struct {
	apiKey string
}

// NewGeminiGenerator reads the API key from the environment
func NewGeminiGenerator() *GeminiGenerator {
	return &GeminiGenerator{apiKey: os.Getenv("GEMINI_API_KEY")}
}

// Available implements Generator
func (g *GeminiGenerator) Available() bool {
	return g.apiKey != "" && g.apiKey != apiKeyPlaceholder
}

// Generate implements Generator
func (g *GeminiGenerator) Generate(ctx context.Context, query string) (*GenerativeReply, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(promptTemplate, query)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	return &GenerativeReply{
		Text:     text,
		Products: productsForQuery(query),
	}, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}

// productsForQuery attaches known product cards for queries the demo
// recognizes. Generated entries get synthesized ids and defaults so
// they behave like catalog products downstream.
func productsForQuery(query string) []product.Product {
	if !strings.Contains(strings.ToLower(query), "apple pie") {
		return nil
	}
	names := []struct {
		name     string
		category string
		aisle    string
		price    float64
	}{
		{"Granny Smith Apples", "Produce", "1", 3.48},
		{"All-Purpose Flour", "Baking", "6", 2.98},
		{"Butter", "Dairy", "12", 4.68},
		{"Sugar", "Baking", "6", 2.48},
		{"Cinnamon", "Spices", "6", 1.98},
	}
	products := make([]product.Product, 0, len(names))
	for _, n := range names {
		products = append(products, generatedProduct(n.name, n.category, n.aisle, n.price))
	}
	return products
}

// generatedProduct fills in the fields a generative answer cannot know
func generatedProduct(name, category, aisle string, price float64) product.Product {
	if price <= 0 {
		price = 2.99
	}
	if aisle == "" {
		aisle = "1"
	}
	return product.Product{
		ID:           uuid.New().String(),
		Title:        name,
		Price:        price,
		Image:        "https://picsum.photos/seed/" + uuid.New().String()[:8] + "/200",
		Availability: product.AvailabilityInStock,
		Aisle:        aisle,
		Category:     category,
	}
}
