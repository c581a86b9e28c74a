package chat

import (
	"time"

	"github.com/wallysmart/shopping-assistant/internal/domain/product"
	"github.com/wallysmart/shopping-assistant/internal/domain/store"
)

// Author tags who produced a message
type Author string

// Author constants; the wire values match what the web client renders
const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "ai"
)

// ChartDataset is one series of a rendered price chart
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"border_color"`
	BackgroundColor string    `json:"background_color"`
	Tension         float64   `json:"tension"`
}

// PriceChart carries a synthetic price-trend series ready for rendering
type PriceChart struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// TimeframeOption is a follow-up button bound to a chart message
type TimeframeOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Message is one entry of the conversation transcript. Messages are
// immutable once appended; a response template populates at most one of
// the visualization payloads.
type Message struct {
	ID                    string              `json:"id"`
	UserID                string              `json:"user_id"`
	Author                Author              `json:"type"`
	Text                  string              `json:"content"`
	CreatedAt             time.Time           `json:"timestamp"`
	ProductCards          []product.Product   `json:"product_cards,omitempty"`
	MapData               *store.Route        `json:"map_data,omitempty"`
	ChartData             *PriceChart         `json:"chart_data,omitempty"`
	ChartTimeframeOptions []TimeframeOption   `json:"chart_timeframe_options,omitempty"`
	SubjectProductName    string              `json:"subject_product_name,omitempty"`
	StoreAvailability     *store.Availability `json:"store_availability,omitempty"`
}
