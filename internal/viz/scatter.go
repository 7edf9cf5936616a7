//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"

	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

//
// DOCUMENT MAP
//

// the doc-topic matrix squeezed into two dimensions via t-sne; each point is
// a review, colored by its dominant topic

// RenderDocumentMap - 2d embedding of the per-document topic weights
func RenderDocumentMap(asn []str.TopicAssignment, topics int, path string) error {
	const (
		TITLESTR = "Documents in topic space (t-SNE)"
		SUBSTR   = "each point is one review; series = dominant topic"
		VERBOSE  = false
		SYMSIZE  = 6
	)

	ndocs := len(asn)
	if ndocs == 0 {
		return fmt.Errorf("nothing to embed: no topic assignments")
	}

	// rows are documents, columns are topics
	dd := make([]float64, 0, ndocs*topics)
	for i := range asn {
		for t := 0; t < topics; t++ {
			w := 0.0
			if t < len(asn[i].Weights) {
				w = asn[i].Weights[t]
			}
			dd = append(dd, w)
		}
	}
	wv := mat.NewDense(ndocs, topics, dd)

	t := tsne.NewTSNE(2, vv.TSNEPERPLEXITY, vv.TSNELEARNRT, vv.TSNEMAXITER, VERBOSE)
	t.EmbedData(wv, nil)

	// one scatter series per dominant topic
	series := make(map[int][]opts.ScatterData)
	for i := range asn {
		x := t.Y.At(i, 0)
		y := t.Y.At(i, 1)
		d := asn[i].Dominant()
		series[d] = append(series[d], opts.ScatterData{
			Name:       asn[i].DocID,
			Value:      []interface{}{x, y},
			SymbolSize: SYMSIZE,
		})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, Subtitle: SUBSTR}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5%"}),
		charts.WithXAxisOpts(opts.XAxis{Show: false}),
		charts.WithYAxisOpts(opts.YAxis{Show: false}),
	)

	for topic := 0; topic < topics; topic++ {
		if len(series[topic]) == 0 {
			continue
		}
		sc.AddSeries(fmt.Sprintf("topic %02d", topic), series[topic])
	}

	return renderpage(path, sc)
}
