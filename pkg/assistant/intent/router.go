package intent

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// Router maps free-form user messages onto canned assistant replies.
// Matching is keyword based, first match wins, and never fails: any
// message that hits no rule falls through to the capability overview.
type Router struct {
	rng    *rand.Rand
	now    func() time.Time
	logger logger.Logger
}

// NewRouter builds a router. rng drives the synthesized price and
// availability data; pass a seeded source in tests for stable shapes.
func NewRouter(rng *rand.Rand, log logger.Logger) *Router {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Router{
		rng:    rng,
		now:    time.Now,
		logger: log,
	}
}

// Route resolves a user message into a response. The conversation
// context supplies the current store and the timeframe carried from a
// previous trend question.
func (r *Router) Route(message string, convCtx Context) Response {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "is this product available") ||
		strings.Contains(lower, "available near me") ||
		strings.Contains(lower, "product availability"):
		return r.availabilityResponse(message)

	case strings.Contains(lower, "apple pie"):
		if strings.Contains(lower, "directions") || strings.Contains(lower, "in store") {
			return RouteResponse{
				Text:     "Perfect! Since you're in the store, here's your optimized route to collect all apple pie ingredients. Follow the blue path on the map below:",
				Products: applePieRouteProducts(),
				Route:    applePieRoute(convCtx.storeID()),
			}
		}
		return ProductListResponse{
			Text:     "Here are the essential ingredients for a delicious apple pie! Would you like me to add these to your cart?",
			Products: applePieIngredients(),
		}

	case strings.Contains(lower, "chocolate ice cream") || strings.Contains(lower, "ice cream"):
		return RouteResponse{
			Text:     "I'd love to help you make chocolate ice cream! Here are the ingredients you'll need and where to find them in the store:",
			Products: iceCreamProducts(),
			Route:    iceCreamRoute(convCtx.storeID()),
		}

	case strings.Contains(lower, "healthy") || strings.Contains(lower, "breakfast"):
		return ProductListResponse{
			Text:     "Here are some great healthy breakfast options available in the store:",
			Products: healthyBreakfastProducts(),
		}

	case strings.Contains(lower, "historical trends") || strings.Contains(lower, "price trend"):
		return r.trendResponse(message, convCtx)

	case strings.Contains(lower, "where") || strings.Contains(lower, "find"):
		return PlainTextResponse{
			Text: fmt.Sprintf("I can help you find that! %s has a well-organized layout. What specific product are you looking for?", convCtx.storeName()),
		}

	default:
		return PlainTextResponse{
			Text: "I'm here to help! You can ask me about:\n• Finding specific products\n• Recipe ingredients and locations\n• Store navigation\n• Product recommendations\n• Price comparisons\n\nWhat would you like to know?",
		}
	}
}

func (r *Router) availabilityResponse(message string) Response {
	productName := extractAvailabilitySubject(message)
	if r.logger != nil {
		r.logger.Debug("checking store availability", "product", productName)
	}
	availability := storeAvailability(r.rng, productName)

	available := availability.AvailableStores()
	unavailable := availability.UnavailableStores()

	var b strings.Builder
	fmt.Fprintf(&b, "Checking availability for **%s** in stores near you:\n\n", productName)
	if len(available) > 0 {
		b.WriteString("**Available at:**\n")
		for _, s := range available {
			fmt.Fprintf(&b, "- %s (%s)\n", s.Name, s.Distance)
		}
	} else {
		b.WriteString("This product is currently **not available** in any nearby stores.\n")
	}
	if len(unavailable) > 0 && len(available) > 0 {
		b.WriteString("\n**Not available at:**\n")
		for _, s := range unavailable {
			fmt.Fprintf(&b, "- %s (%s)\n", s.Name, s.Distance)
		}
	}
	b.WriteString("\nSee the map below for locations:")

	return AvailabilityResponse{
		Text:         b.String(),
		Availability: availability,
	}
}

func (r *Router) trendResponse(message string, convCtx Context) Response {
	productName := extractTrendSubject(message)
	tf := extractTimeframe(message, convCtx.Timeframe)

	return TrendResponse{
		Text:             fmt.Sprintf("Here's the historical price trend for **%s** over the past %s:", productName, tf),
		Chart:            priceHistory(r.rng, productName, tf, r.now()),
		TimeframeOptions: timeframeOptions(),
		ProductName:      productName,
	}
}

func (c Context) storeID() string {
	if c.Store != nil {
		return c.Store.ID
	}
	return "store-default"
}

func (c Context) storeName() string {
	if c.Store != nil {
		return c.Store.Name
	}
	return "Your local store"
}
