//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"fmt"
	"math"

	"github.com/e-gun/wego/pkg/search"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

//
// NEIGHBOR GRAPHS
//

// see also: https://echarts.apache.org/en/option.html#series-graph

// RenderNeighborChart - one force-directed graph per seed term
func RenderNeighborChart(nn map[string]search.Neighbors, seeds []string, path string) error {
	var cc []components.Charter
	for _, seed := range seeds {
		if len(nn[seed]) == 0 {
			continue
		}
		cc = append(cc, neighborgraph(seed, nn[seed]))
	}
	if len(cc) == 0 {
		return fmt.Errorf("no neighbor data to graph")
	}
	return renderpage(path, cc...)
}

func neighborgraph(coreword string, neighbors search.Neighbors) *charts.Graph {
	const (
		SYMSIZE       = 25
		SIZEDISTORT   = 2.25
		PRECISON      = 4
		REPULSION     = 6000
		GRAVITY       = .15
		EDGELEN       = 40
		EDGEFNTSZ     = 8
		SERIESNAME    = ""
		LAYOUTTYPE    = "force"
		LABELPOSITON  = "right"
		LINECURVINESS = 0 // from 0 to 1, but non-zero will double-up the lines...
		LINETYPE      = "solid"
		DOTCOLOR      = "hsla(236, 33%, 40%, 1)"
		TITLESTR      = "Nearest neighbors of »%s«"
		CHRTWIDTH     = "900px"
		CHRTHEIGHT    = "700px"
	)

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf(TITLESTR, coreword)}),
	)

	round := func(val float64) float32 {
		ratio := math.Pow(10, float64(PRECISON))
		return float32(math.Round(val*ratio) / ratio)
	}

	// the most similar neighbor gets the biggest bubble
	var maxsim float64
	for _, w := range neighbors {
		if w.Similarity > maxsim {
			maxsim = w.Similarity
		}
	}

	dot := &opts.ItemStyle{Color: DOTCOLOR}
	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	var gnn []opts.GraphNode
	var gll []opts.GraphLink

	gnn = append(gnn, opts.GraphNode{Name: coreword, Value: 0, SymbolSize: fmt.Sprintf("%.4f", SYMSIZE*SIZEDISTORT), ItemStyle: dot})
	for _, w := range neighbors {
		sizemod := fmt.Sprintf("%.4f", ((w.Similarity/maxsim)*SIZEDISTORT)*SYMSIZE)
		gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: sizemod, ItemStyle: dot})
		gll = append(gll, opts.GraphLink{Source: coreword, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
	}

	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{
				Show:     true,
				Position: LABELPOSITON,
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Curveness: LINECURVINESS,
				Type:      LINETYPE,
			}),
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				FocusNodeAdjacency: true,
			},
		),
	)
	return graph
}
