// Package render draws a solved Cifra Carmesim box as a standalone HTML
// page using go-echarts: every crystal is a square coloured by brightness,
// and the crystals used by the solution are overlaid as a second series.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gs-coelho/cifra-carmesim/grid"
	"github.com/gs-coelho/cifra-carmesim/solver"
)

// palette is the viridis ramp used for brightness.
var palette = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// Points splits the grid into chart data: all crystals and the used ones.
// Each value is [col, row, brightness] with 1-based coordinates and row 1
// drawn at the top.
func Points(g *grid.Grid, sol solver.Solution) (crystals, used []opts.ScatterData, maxBrightness int) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := g.Cell(r, c)
			if !cell.HasCrystal() {
				continue
			}
			crystals = append(crystals, opts.ScatterData{Value: []interface{}{c + 1, -(r + 1), cell.Brightness}})
			maxBrightness = max(maxBrightness, cell.Brightness)
		}
	}
	for _, p := range sol.Cells {
		b := g.Cell(p.Row-1, p.Col-1).Brightness
		used = append(used, opts.ScatterData{Value: []interface{}{p.Col, -p.Row, b}})
	}
	return crystals, used, maxBrightness
}

// HTML writes the chart page for g and sol to w.
func HTML(w io.Writer, g *grid.Grid, sol solver.Solution) error {
	crystals, used, maxBrightness := Points(g, sol)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Cifra Carmesim", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cifra Carmesim",
			Subtitle: fmt.Sprintf("%d×%d box, crystals=%d brightness=%d", g.Rows(), g.Cols(), sol.Crystals, sol.Brightness),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: g.Cols() + 1, Name: "column", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -(g.Rows() + 1), Max: 0, Name: "row", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxBrightness),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: palette},
		}),
	)

	scatter.AddSeries("crystals", crystals,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "rect", SymbolSize: 28}))
	scatter.AddSeries("used", used,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 12}),
		charts.WithItemStyleOpts(opts.ItemStyle{BorderColor: "#dc143c", BorderWidth: 3}))

	return scatter.Render(w)
}
