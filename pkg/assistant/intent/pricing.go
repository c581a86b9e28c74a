package intent

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/wallysmart/shopping-assistant/internal/domain/chat"
)

// Base prices for products the demo knows about. Anything else gets
// the default base.
const (
	basePriceApples  = 3.50
	basePriceFlour   = 3.00
	basePriceDefault = 5.00
)

func basePriceFor(productName string) float64 {
	switch strings.ToLower(strings.TrimSpace(productName)) {
	case "granny smith apples":
		return basePriceApples
	case "all-purpose flour":
		return basePriceFlour
	default:
		return basePriceDefault
	}
}

// seriesLength returns the number of data points for a timeframe
func seriesLength(tf Timeframe) int {
	switch tf {
	case TimeframeWeek:
		return 7
	case TimeframeYear:
		return 12
	default:
		return 30
	}
}

func seriesLabels(tf Timeframe, now time.Time) []string {
	n := seriesLength(tf)
	labels := make([]string, n)
	switch tf {
	case TimeframeYear:
		for i := 0; i < n; i++ {
			labels[i] = now.AddDate(0, i-n+1, 0).Format("Jan")
		}
	default:
		for i := 0; i < n; i++ {
			labels[i] = now.AddDate(0, 0, i-n+1).Format("Jan 2")
		}
	}
	return labels
}

// priceHistory synthesizes a plausible price series for a product.
// Each point is the base price with up to 10% random jitter plus a
// small upward drift across the span.
func priceHistory(rng *rand.Rand, productName string, tf Timeframe, now time.Time) *chat.PriceChart {
	base := basePriceFor(productName)
	n := seriesLength(tf)

	data := make([]float64, n)
	for i := 0; i < n; i++ {
		jitter := (rng.Float64() - 0.5) * 0.2 * base
		drift := 0.01 * float64(i)
		data[i] = math.Round((base+jitter+drift)*100) / 100
	}

	return &chat.PriceChart{
		Labels: seriesLabels(tf, now),
		Datasets: []chat.ChartDataset{
			{
				Label:           "Price ($)",
				Data:            data,
				BorderColor:     "#0071dc",
				BackgroundColor: "rgba(0, 113, 220, 0.1)",
				Tension:         0.4,
			},
		},
	}
}

// timeframeOptions lists the follow-up spans offered alongside a chart
func timeframeOptions() []chat.TimeframeOption {
	return []chat.TimeframeOption{
		{Label: "Past Week", Value: string(TimeframeWeek)},
		{Label: "Past Month", Value: string(TimeframeMonth)},
		{Label: "Past Year", Value: string(TimeframeYear)},
	}
}
