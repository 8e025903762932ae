package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"ep-server/models"
)

// PlotVenueComparison renders an HTML bar chart comparing the capacity and
// budget of the given venues.
func PlotVenueComparison(w io.Writer, venues []models.Venue) error {
	names := make([]string, len(venues))
	capacities := make([]opts.BarData, len(venues))
	budgets := make([]opts.BarData, len(venues))
	for i, v := range venues {
		names[i] = v.VenueName
		capacities[i] = opts.BarData{Value: v.Capacity}
		budgets[i] = opts.BarData{Value: v.Budget}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venue Comparison",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Matching Venues",
			Subtitle: "Capacity and budget per venue",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(names).
		AddSeries("Capacity", capacities).
		AddSeries("Budget", budgets)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render venue comparison chart: %w", err)
	}
	return nil
}
