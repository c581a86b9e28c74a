package dto

import (
	"time"

	"github.com/wallysmart/shopping-assistant/internal/domain/chat"
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
	"github.com/wallysmart/shopping-assistant/internal/domain/store"
)

// SendMessageRequest is a user message posted to the assistant.
// Timeframe and SubjectProduct are set together by the chart follow-up
// buttons; a timeframe without its subject is rejected.
type SendMessageRequest struct {
	Content        string `json:"content" binding:"required"`
	Timeframe      string `json:"timeframe" binding:"omitempty,oneof=week month year"`
	SubjectProduct string `json:"subject_product"`
}

// MessageResponse is one transcript entry as the client renders it
type MessageResponse struct {
	ID                    string                 `json:"id"`
	Type                  string                 `json:"type"`
	Content               string                 `json:"content"`
	Timestamp             time.Time              `json:"timestamp"`
	Source                string                 `json:"source,omitempty"`
	ProductCards          []product.Product      `json:"product_cards,omitempty"`
	MapData               *store.Route           `json:"map_data,omitempty"`
	ChartData             *chat.PriceChart       `json:"chart_data,omitempty"`
	ChartTimeframeOptions []chat.TimeframeOption `json:"chart_timeframe_options,omitempty"`
	SubjectProductName    string                 `json:"subject_product_name,omitempty"`
	StoreAvailability     *store.Availability    `json:"store_availability,omitempty"`
}

// ConversationResponse is the assistant's reply pair: the echoed user
// message plus the generated answer.
type ConversationResponse struct {
	UserMessage MessageResponse `json:"user_message"`
	AIMessage   MessageResponse `json:"ai_message"`
}

// HistoryResponse is a page of the conversation transcript
type HistoryResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ToMessageResponse converts a transcript entry into its API view
func ToMessageResponse(m chat.Message) MessageResponse {
	return MessageResponse{
		ID:                    m.ID,
		Type:                  string(m.Author),
		Content:               m.Text,
		Timestamp:             m.CreatedAt,
		ProductCards:          m.ProductCards,
		MapData:               m.MapData,
		ChartData:             m.ChartData,
		ChartTimeframeOptions: m.ChartTimeframeOptions,
		SubjectProductName:    m.SubjectProductName,
		StoreAvailability:     m.StoreAvailability,
	}
}

// ToMessageResponses converts a transcript slice
func ToMessageResponses(msgs []chat.Message) []MessageResponse {
	out := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = ToMessageResponse(m)
	}
	return out
}
