//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)

//
// CHARTING
//

// see also: https://echarts.apache.org/en/option.html

// RenderTrendChart - one line per topic across the time buckets
func RenderTrendChart(buckets []str.TemporalBucket, summaries []str.TopicSummary, path string) error {
	const (
		TITLESTR = "Mean topic prevalence by decade"
		SUBSTR   = "empty decades are plotted at zero, not interpolated"
		SMOOTH   = true
	)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, Subtitle: SUBSTR}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5%"}),
	)

	labels := make([]string, len(buckets))
	for i := range buckets {
		labels[i] = buckets[i].Label()
	}
	line.SetXAxis(labels)

	for _, s := range summaries {
		data := make([]opts.LineData, len(buckets))
		for i := range buckets {
			v := 0.0
			if s.Topic < len(buckets[i].Prevalence) {
				v = buckets[i].Prevalence[s.Topic]
			}
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(topiclabel(s), data, charts.WithLineChartOpts(opts.LineChart{Smooth: SMOOTH}))
	}

	return renderpage(path, line)
}

// RenderTermChart - a bar chart per topic showing its top term weights
func RenderTermChart(summaries []str.TopicSummary, path string) error {
	const (
		TITLESTR = "Topic %02d"
		WD       = "750px"
		HT       = "400px"
	)

	var cc []components.Charter
	for _, s := range summaries {
		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: WD, Height: HT}),
			charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf(TITLESTR, s.Topic), Subtitle: topiclabel(s)}),
		)
		bar.SetXAxis(s.TopWords)

		data := make([]opts.BarData, len(s.Weights))
		for i, v := range s.Weights {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries("weight", data)
		cc = append(cc, bar)
	}

	return renderpage(path, cc...)
}

// topiclabel - "t03: beauti sublim tast"
func topiclabel(s str.TopicSummary) string {
	const (
		NW = 3
	)
	n := NW
	if n > len(s.TopWords) {
		n = len(s.TopWords)
	}
	l := fmt.Sprintf("t%02d:", s.Topic)
	for i := 0; i < n; i++ {
		l += " " + s.TopWords[i]
	}
	return l
}

func renderpage(path string, cc ...components.Charter) error {
	const (
		MSG1 = "wrote chart to '%s'"
	)

	p := components.NewPage()
	p.AddCharts(cc...)

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	if e := p.Render(f); e != nil {
		return e
	}

	Msg.FYI(fmt.Sprintf(MSG1, path))
	return nil
}
