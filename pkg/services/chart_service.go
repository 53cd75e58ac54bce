package services

import (
	"fmt"
	"io"

	"smart-assets-api/pkg/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const lifeHistogramBinYears = 0.5

// ChartService renders the dashboard and report charts as a standalone HTML page.
type ChartService struct {
	pageTitle string
}

// NewChartService creates a chart service.
func NewChartService() *ChartService {
	return &ChartService{pageTitle: "النظام الذكي لإدارة الأصول"}
}

// RenderDashboard writes the city, priority, cost and remaining-life charts of store to w.
func (cs *ChartService) RenderDashboard(w io.Writer, store *AssetStore) error {
	insights := Summarize(store)

	page := components.NewPage()
	page.AddCharts(
		cs.cityPie(insights.CityDistribution),
		cs.priorityBar(insights.PriorityDistribution),
		cs.lifeHistogram(LifeHistogram(store, lifeHistogramBinYears)),
	)
	if box, err := CostBoxStats(store); err == nil {
		page.AddCharts(cs.costBox(box))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render dashboard charts: %w", err)
	}
	return nil
}

func (cs *ChartService) cityPie(dist []models.CountEntry) *charts.Pie {
	items := make([]opts.PieData, 0, len(dist))
	for _, e := range dist {
		items = append(items, opts.PieData{Name: e.Key, Value: e.Count})
	}
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: cs.pageTitle}),
		charts.WithTitleOpts(opts.Title{Title: "🏙️ توزيع الأصول حسب المدينة"}),
	)
	pie.AddSeries("المدن", items)
	return pie
}

func (cs *ChartService) priorityBar(dist []models.CountEntry) *charts.Bar {
	labels := make([]string, 0, len(dist))
	items := make([]opts.BarData, 0, len(dist))
	for _, e := range dist {
		labels = append(labels, models.Priority(e.Key).Label())
		items = append(items, opts.BarData{Name: e.Key, Value: e.Count})
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "🎯 توزيع أولويات الصيانة"}))
	bar.SetXAxis(labels).AddSeries("الأصول", items)
	return bar
}

func (cs *ChartService) lifeHistogram(bins []HistogramBin) *charts.Bar {
	labels := make([]string, 0, len(bins))
	items := make([]opts.BarData, 0, len(bins))
	for _, b := range bins {
		labels = append(labels, fmt.Sprintf("%s-%s", FormatYears(b.From), FormatYears(b.To)))
		items = append(items, opts.BarData{Value: b.Count})
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "⏳ توزيع العمر الإنتاجي المتبقي"}))
	bar.SetXAxis(labels).AddSeries("العمر المتبقي", items)
	return bar
}

func (cs *ChartService) costBox(box BoxStats) *charts.BoxPlot {
	plot := charts.NewBoxPlot()
	plot.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "📦 توزيع التكاليف"}))
	plot.SetXAxis([]string{ColCost}).AddSeries("التكلفة", []opts.BoxPlotData{
		{Value: []float64{box.Min, box.Q1, box.Median, box.Q3, box.Max}},
	})
	return plot
}
