package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrTooFewSamples is returned when a chart is requested for fewer than two
// generations.
var ErrTooFewSamples = errors.New("population chart needs at least two samples")

// PopulationHistory records the live-cell count of successive generations.
type PopulationHistory struct {
	generations []float64
	population  []float64
}

// Record appends one sample.
func (h *PopulationHistory) Record(generation, population int) {
	h.generations = append(h.generations, float64(generation))
	h.population = append(h.population, float64(population))
}

// Len returns the number of samples.
func (h *PopulationHistory) Len() int { return len(h.population) }

// Peak returns the largest recorded population.
func (h *PopulationHistory) Peak() int {
	peak := 0.0
	for _, p := range h.population {
		if p > peak {
			peak = p
		}
	}
	return int(peak)
}

// WritePopulationChart renders the history as a PNG line chart.
func WritePopulationChart(w io.Writer, h *PopulationHistory) error {
	if h == nil || h.Len() < 2 {
		return ErrTooFewSamples
	}
	top := float64(h.Peak())
	if top < 1 {
		top = 1
	}
	graph := chart.Chart{
		Width:  800,
		Height: 300,
		XAxis: chart.XAxis{
			Name:  "Generation",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Live cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Population",
				XValues: h.generations,
				YValues: h.population,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render population chart: %w", err)
	}
	return nil
}
