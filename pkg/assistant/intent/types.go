package intent

import (
	"github.com/wallysmart/shopping-assistant/internal/domain/chat"
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
	"github.com/wallysmart/shopping-assistant/internal/domain/store"
)

// Timeframe selects the span of a price history series
type Timeframe string

// Supported timeframes
const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// Valid reports whether t is one of the supported timeframes
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeWeek, TimeframeMonth, TimeframeYear:
		return true
	}
	return false
}

// Context carries conversation state that influences routing
type Context struct {
	// Store is the store the user is currently browsing, if any
	Store *store.Store
	// Timeframe is the last timeframe the user asked a trend for
	Timeframe Timeframe
}

// Response is the closed set of assistant reply shapes. Each variant
// knows how to project itself onto a chat message.
type Response interface {
	// Apply writes the variant's payload fields onto a chat message
	Apply(msg *chat.Message)
}

// ProductListResponse carries a text reply plus product cards
type ProductListResponse struct {
	Text     string
	Products []product.Product
}

// Apply implements Response
func (r ProductListResponse) Apply(msg *chat.Message) {
	msg.Text = r.Text
	msg.ProductCards = r.Products
}

// RouteResponse carries a text reply, product cards and an in-store route
type RouteResponse struct {
	Text     string
	Products []product.Product
	Route    *store.Route
}

// Apply implements Response
func (r RouteResponse) Apply(msg *chat.Message) {
	msg.Text = r.Text
	msg.ProductCards = r.Products
	msg.MapData = r.Route
}

// TrendResponse carries a price history chart with timeframe options
type TrendResponse struct {
	Text             string
	Chart            *chat.PriceChart
	TimeframeOptions []chat.TimeframeOption
	ProductName      string
}

// Apply implements Response
func (r TrendResponse) Apply(msg *chat.Message) {
	msg.Text = r.Text
	msg.ChartData = r.Chart
	msg.ChartTimeframeOptions = r.TimeframeOptions
	msg.SubjectProductName = r.ProductName
}

// AvailabilityResponse carries per-store stock information
type AvailabilityResponse struct {
	Text         string
	Availability *store.Availability
}

// Apply implements Response
func (r AvailabilityResponse) Apply(msg *chat.Message) {
	msg.Text = r.Text
	msg.StoreAvailability = r.Availability
}

// PlainTextResponse carries text only
type PlainTextResponse struct {
	Text string
}

// Apply implements Response
func (r PlainTextResponse) Apply(msg *chat.Message) {
	msg.Text = r.Text
}
