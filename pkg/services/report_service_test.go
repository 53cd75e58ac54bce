package services

import (
	"testing"

	"smart-assets-api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func TestApplyFilter(t *testing.T) {
	store := SampleAssets()

	assert.Same(t, store, ApplyFilter(store, AssetFilter{}))
	assert.Equal(t, 7, ApplyFilter(store, AssetFilter{MinCost: float(90), MaxCost: float(90)}).Len())
	assert.Equal(t, 2, ApplyFilter(store, AssetFilter{MaxCost: float(60)}).Len())
	assert.Equal(t, []string{"24009041.0"}, tagIDs(ApplyFilter(store, AssetFilter{Priorities: []models.Priority{models.PriorityMedium}})))
	assert.Equal(t, 2, ApplyFilter(store, AssetFilter{City: "جدة", Priorities: []models.Priority{models.PriorityHigh}}).Len())
	assert.Equal(t, 4, ApplyFilter(store, AssetFilter{Priorities: []models.Priority{models.PriorityHigh, models.PriorityMedium}}).Len())
	assert.Equal(t, 1, ApplyFilter(store, AssetFilter{Department: "ادارة الامن والصحة والسلامة"}).Len())
	assert.Equal(t, 0, ApplyFilter(store, AssetFilter{City: "مكة المكرمة"}).Len())
}

func TestBuildReport(t *testing.T) {
	store := SampleAssets()

	cases := []struct {
		kind  ReportKind
		param string
		want  int
	}{
		{ReportAll, "", 10},
		{"", "", 10},
		{ReportHighPriority, "", 3},
		{ReportByCity, "الرياض", 2},
		{ReportByDepartment, facilitiesDept, 7},
		{ReportLowCost, "", 2},
		{ReportHighCost, "", 1},
	}
	for _, tc := range cases {
		report, err := BuildReport(store, tc.kind, tc.param)
		require.NoError(t, err, tc.kind)
		assert.Equal(t, tc.want, report.Len(), tc.kind)
	}
}

func TestBuildReportErrors(t *testing.T) {
	store := SampleAssets()

	_, err := BuildReport(store, "weekly", "")
	assert.ErrorIs(t, err, ErrUnknownReport)

	_, err = BuildReport(store, ReportByCity, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownReport)

	_, err = BuildReport(store, ReportByDepartment, "")
	assert.Error(t, err)
}

func TestBuildReportCostOnEmptyStore(t *testing.T) {
	report, err := BuildReport(EmptyAssetStore(), ReportLowCost, "")
	require.NoError(t, err)
	assert.True(t, report.IsEmpty())
}

func TestMedianCost(t *testing.T) {
	median, err := MedianCost(SampleAssets())
	require.NoError(t, err)
	assert.Equal(t, 90.0, median)

	even := NewAssetStore([]models.AssetRecord{{Cost: 4}, {Cost: 1}, {Cost: 3}, {Cost: 2}})
	median, err = MedianCost(even)
	require.NoError(t, err)
	assert.Equal(t, 2.5, median)

	_, err = MedianCost(EmptyAssetStore())
	assert.ErrorIs(t, err, ErrEmptyStore)
}

func TestCostBoxStats(t *testing.T) {
	box, err := CostBoxStats(SampleAssets())
	require.NoError(t, err)

	assert.Equal(t, 45.0, box.Min)
	assert.Equal(t, 90.0, box.Q1)
	assert.Equal(t, 90.0, box.Median)
	assert.Equal(t, 90.0, box.Q3)
	assert.Equal(t, 125.7, box.Max)

	_, err = CostBoxStats(EmptyAssetStore())
	assert.ErrorIs(t, err, ErrEmptyStore)
}

func TestLifeHistogram(t *testing.T) {
	bins := LifeHistogram(SampleAssets(), 0.5)

	require.Len(t, bins, 6)
	counts := make([]int, len(bins))
	for i, b := range bins {
		counts[i] = b.Count
	}
	assert.Equal(t, []int{2, 1, 1, 0, 0, 6}, counts)
	assert.Equal(t, 2.5, bins[5].From)
	assert.Equal(t, 3.0, bins[5].To)

	assert.Empty(t, LifeHistogram(EmptyAssetStore(), 0.5))
	assert.Empty(t, LifeHistogram(SampleAssets(), 0))
}

func TestLifeHistogramWidensBinsForOutliers(t *testing.T) {
	for _, outlier := range []float64{1e18, 1e9, 30} {
		records := SampleAssets().Records()
		records[0].RemainingUsefulLife = outlier
		bins := LifeHistogram(NewAssetStore(records), 0.5)

		require.NotEmpty(t, bins, "outlier %v", outlier)
		assert.LessOrEqual(t, len(bins), maxHistogramBins, "outlier %v", outlier)
		total := 0
		for _, b := range bins {
			total += b.Count
		}
		assert.Equal(t, 10, total, "outlier %v", outlier)
		assert.Equal(t, 1, bins[len(bins)-1].Count, "outlier %v", outlier)
		assert.GreaterOrEqual(t, bins[len(bins)-1].To, outlier, "outlier %v", outlier)
	}
}
