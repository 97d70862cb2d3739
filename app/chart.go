package app

import (
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/aep/entity/parameters"
)

const pageTitle = "A Zero-Parameter Two-Field Cosmology: AEP parameters"

// createChart plots log10|value| of every parameter, since their magnitudes
// span more than two hundred decades.
func createChart(p parameters.Parameters) *charts.Bar {
	startTime := time.Now()
	fields := p.Fields()
	defer func() {
		log.WithFields(log.Fields{
			"time":   time.Since(startTime),
			"fields": len(fields),
		}).Debug("Creating chart")
	}()
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       pageTitle,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "AEP parameters",
			Subtitle: "log10 of absolute value",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "aep_parameters",
					Title: "Save as image",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Parameter",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "log10 |value|",
			Type: "value",
			Show: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	names := make([]string, len(fields))
	data := make([]opts.BarData, len(fields))
	for i, f := range fields {
		names[i] = f.Name
		data[i] = opts.BarData{Name: f.Name, Value: magnitude(f.Value)}
	}
	bar.SetXAxis(names).AddSeries("log10 |value|", data)

	return bar
}

func magnitude(v float64) float64 {
	if v == 0 {
		return 0
	}
	return math.Log10(math.Abs(v))
}
