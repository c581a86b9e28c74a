package intent

import (
	"math/rand"
	"testing"
	"time"
)

func TestBasePriceFor(t *testing.T) {
	tests := []struct {
		product string
		want    float64
	}{
		{"granny smith apples", 3.50},
		{"Granny Smith Apples", 3.50},
		{"all-purpose flour", 3.00},
		{"something else entirely", 5.00},
	}

	for _, tt := range tests {
		if got := basePriceFor(tt.product); got != tt.want {
			t.Errorf("basePriceFor(%q) = %v, want %v", tt.product, got, tt.want)
		}
	}
}

func TestPriceHistoryLengths(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		tf   Timeframe
		want int
	}{
		{TimeframeWeek, 7},
		{TimeframeMonth, 30},
		{TimeframeYear, 12},
	}

	for _, tt := range tests {
		chart := priceHistory(rng, "granny smith apples", tt.tf, now)
		if len(chart.Labels) != tt.want {
			t.Errorf("%s: labels = %d, want %d", tt.tf, len(chart.Labels), tt.want)
		}
		if len(chart.Datasets) != 1 {
			t.Fatalf("%s: expected one dataset, got %d", tt.tf, len(chart.Datasets))
		}
		if len(chart.Datasets[0].Data) != tt.want {
			t.Errorf("%s: data = %d, want %d", tt.tf, len(chart.Datasets[0].Data), tt.want)
		}
	}
}

func TestPriceHistoryBounds(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(99))

	base := basePriceFor("granny smith apples")
	chart := priceHistory(rng, "granny smith apples", TimeframeMonth, now)

	// jitter stays within 10% of base; drift adds at most 0.01 per point
	lo := base*0.9 - 0.01
	hi := base*1.1 + 0.01*float64(len(chart.Datasets[0].Data)) + 0.01
	for i, v := range chart.Datasets[0].Data {
		if v < lo || v > hi {
			t.Errorf("point %d = %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

func TestPriceHistoryYearLabels(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	chart := priceHistory(rng, "bananas", TimeframeYear, now)
	if got := chart.Labels[len(chart.Labels)-1]; got != "Jul" {
		t.Errorf("last label = %q, want %q", got, "Jul")
	}
	if got := chart.Labels[0]; got != "Aug" {
		t.Errorf("first label = %q, want %q", got, "Aug")
	}
}

func TestTimeframeOptions(t *testing.T) {
	opts := timeframeOptions()
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	values := map[string]bool{}
	for _, o := range opts {
		values[o.Value] = true
	}
	for _, want := range []string{"week", "month", "year"} {
		if !values[want] {
			t.Errorf("missing option %q", want)
		}
	}
}
