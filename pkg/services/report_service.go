package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"smart-assets-api/pkg/models"
)

// ErrUnknownReport is returned by BuildReport for an unsupported report kind.
var ErrUnknownReport = errors.New("unknown report kind")

// ReportKind selects one of the canned asset reports.
type ReportKind string

const (
	ReportAll          ReportKind = "all"
	ReportHighPriority ReportKind = "high_priority"
	ReportByCity       ReportKind = "by_city"
	ReportByDepartment ReportKind = "by_department"
	ReportLowCost      ReportKind = "low_cost"
	ReportHighCost     ReportKind = "high_cost"
)

// ReportKinds lists the supported reports in display order.
var ReportKinds = []ReportKind{ReportAll, ReportHighPriority, ReportByCity, ReportByDepartment, ReportLowCost, ReportHighCost}

// AssetFilter holds the structured filters of the search page. Zero values do not filter.
type AssetFilter struct {
	City       string
	Department string
	MinCost    *float64
	MaxCost    *float64
	Priorities []models.Priority
}

// IsEmpty reports whether f restricts nothing.
func (f AssetFilter) IsEmpty() bool {
	return f.City == "" && f.Department == "" && f.MinCost == nil && f.MaxCost == nil && len(f.Priorities) == 0
}

// ApplyFilter keeps the records matching every set field of f. Cost bounds are inclusive.
func ApplyFilter(store *AssetStore, f AssetFilter) *AssetStore {
	if f.IsEmpty() {
		return store
	}
	allowed := make(map[models.Priority]bool, len(f.Priorities))
	for _, p := range f.Priorities {
		allowed[p] = true
	}
	return store.Filter(func(r models.AssetRecord) bool {
		if f.City != "" && r.City != f.City {
			return false
		}
		if f.Department != "" && r.Custodian != f.Department {
			return false
		}
		if f.MinCost != nil && r.Cost < *f.MinCost {
			return false
		}
		if f.MaxCost != nil && r.Cost > *f.MaxCost {
			return false
		}
		if len(allowed) > 0 && !allowed[r.MaintenancePriority] {
			return false
		}
		return true
	})
}

// BuildReport selects the records of a canned report. param is the city for ReportByCity
// and the custodian for ReportByDepartment.
func BuildReport(store *AssetStore, kind ReportKind, param string) (*AssetStore, error) {
	switch kind {
	case ReportAll, "":
		return store, nil
	case ReportHighPriority:
		return ApplyFilter(store, AssetFilter{Priorities: []models.Priority{models.PriorityHigh}}), nil
	case ReportByCity:
		if param == "" {
			return nil, fmt.Errorf("report %s requires a city", kind)
		}
		return ApplyFilter(store, AssetFilter{City: param}), nil
	case ReportByDepartment:
		if param == "" {
			return nil, fmt.Errorf("report %s requires a department", kind)
		}
		return ApplyFilter(store, AssetFilter{Department: param}), nil
	case ReportLowCost, ReportHighCost:
		if store.IsEmpty() {
			return store, nil
		}
		median, err := MedianCost(store)
		if err != nil {
			return nil, err
		}
		if kind == ReportLowCost {
			return store.Filter(func(r models.AssetRecord) bool { return r.Cost < median }), nil
		}
		return store.Filter(func(r models.AssetRecord) bool { return r.Cost > median }), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
}

// MedianCost returns the median cost; even counts average the two middle values.
func MedianCost(store *AssetStore) (float64, error) {
	costs, err := sortedCosts(store)
	if err != nil {
		return 0, err
	}
	return quantile(costs, 0.5), nil
}

// BoxStats is the five-number summary drawn by the cost box plot.
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// CostBoxStats computes the quartiles of cost using linear interpolation.
func CostBoxStats(store *AssetStore) (BoxStats, error) {
	costs, err := sortedCosts(store)
	if err != nil {
		return BoxStats{}, err
	}
	return BoxStats{
		Min:    costs[0],
		Q1:     quantile(costs, 0.25),
		Median: quantile(costs, 0.5),
		Q3:     quantile(costs, 0.75),
		Max:    costs[len(costs)-1],
	}, nil
}

// HistogramBin counts the records whose remaining life falls in [From, To).
type HistogramBin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// maxHistogramBins bounds the life histogram; wider bins are used when the data needs more.
const maxHistogramBins = 50

// LifeHistogram buckets remaining useful life into bins of width years starting at zero.
// Negative lives fall in the first bin. When the largest life would need more than
// maxHistogramBins bins, the bins are widened to fit.
func LifeHistogram(store *AssetStore, width float64) []HistogramBin {
	if store.IsEmpty() || !(width > 0) {
		return []HistogramBin{}
	}
	maxLife := 0.0
	for _, r := range store.all() {
		maxLife = math.Max(maxLife, r.RemainingUsefulLife)
	}
	if maxLife/width >= maxHistogramBins {
		// the largest life lands mid-way into the last bin
		width = maxLife / (maxHistogramBins - 0.5)
	}
	n := min(int(math.Floor(maxLife/width))+1, maxHistogramBins)
	bins := make([]HistogramBin, n)
	for i := range bins {
		bins[i] = HistogramBin{From: float64(i) * width, To: float64(i+1) * width}
	}
	for _, r := range store.all() {
		i := int(math.Floor(r.RemainingUsefulLife / width))
		i = max(0, min(i, n-1))
		bins[i].Count++
	}
	return bins
}

func sortedCosts(store *AssetStore) ([]float64, error) {
	if store.IsEmpty() {
		return nil, fmt.Errorf("cost distribution: %w", ErrEmptyStore)
	}
	costs := make([]float64, 0, store.Len())
	for _, r := range store.all() {
		costs = append(costs, r.Cost)
	}
	sort.Float64s(costs)
	return costs, nil
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
