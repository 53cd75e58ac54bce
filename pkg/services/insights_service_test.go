package services

import (
	"sort"
	"testing"

	"smart-assets-api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeSample(t *testing.T) {
	insights := Summarize(SampleAssets())

	assert.Equal(t, 10, insights.TotalCount)
	assert.InDelta(t, 858.2, insights.TotalValue, 1e-9)
	assert.Equal(t, 3, insights.HighPriorityCount)
	assert.Equal(t, 1, insights.MediumPriorityCount)
	assert.Equal(t, []models.CountEntry{{Key: "جدة", Count: 8}, {Key: "الرياض", Count: 2}}, insights.CityDistribution)
	assert.Equal(t, []models.CountEntry{
		{Key: string(models.PriorityLow), Count: 6},
		{Key: string(models.PriorityHigh), Count: 3},
		{Key: string(models.PriorityMedium), Count: 1},
	}, insights.PriorityDistribution)

	require.Len(t, insights.TopByValue, 5)
	assert.Equal(t, []string{"24000395.0", "24007520.0", "24007457.0", "24009261.0", "24007518.0"},
		tagIDs(NewAssetStore(insights.TopByValue)))
}

func TestSummarizeEmpty(t *testing.T) {
	insights := Summarize(EmptyAssetStore())

	assert.Zero(t, insights.TotalCount)
	assert.Zero(t, insights.TotalValue)
	assert.Zero(t, insights.HighPriorityCount)
	assert.Empty(t, insights.CityDistribution)
	assert.Empty(t, insights.PriorityDistribution)
	assert.Empty(t, insights.TopByValue)
}

func TestSummarizeFewerThanFive(t *testing.T) {
	store := NewAssetStore([]models.AssetRecord{
		{TagID: "a", NetBookValue: 1, RemainingUsefulLife: 3},
		{TagID: "b", NetBookValue: 2, RemainingUsefulLife: 3},
	})
	assert.Equal(t, []string{"b", "a"}, tagIDs(NewAssetStore(Summarize(store).TopByValue)))
}

func TestRecommendationsOrder(t *testing.T) {
	recs := Recommendations(SampleAssets())

	require.Len(t, recs, 4)
	refs := make([]string, len(recs))
	for i, r := range recs {
		refs[i] = r.AssetRef
	}
	assert.Equal(t, []string{"24000395.0", "24007191.0", "24000282.0", "24009041.0"}, refs)

	assert.Equal(t, models.PriorityHigh, recs[0].Priority)
	assert.Equal(t, reasonHighPriority, recs[0].Reason)
	assert.Equal(t, "مركز المخاطر الجيولوجية", recs[0].Department)
	assert.Equal(t, models.PriorityMedium, recs[3].Priority)
	assert.Equal(t, reasonMedPriority, recs[3].Reason)
	assert.Equal(t, "الرياض", recs[3].City)
}

func TestRecommendationsHighBeforeCostlierMedium(t *testing.T) {
	store := NewAssetStore([]models.AssetRecord{
		{TagID: "A", Cost: 100, RemainingUsefulLife: 0.5},
		{TagID: "B", Cost: 500, RemainingUsefulLife: 1.5},
		{TagID: "C", Cost: 300, RemainingUsefulLife: 0.2},
		{TagID: "D", Cost: 900, RemainingUsefulLife: 5},
	})
	recs := Recommendations(store)

	require.Len(t, recs, 3)
	assert.Equal(t, "C", recs[0].AssetRef)
	assert.Equal(t, "A", recs[1].AssetRef)
	assert.Equal(t, "B", recs[2].AssetRef)
}

func TestRecommendationsNoneActionable(t *testing.T) {
	store := NewAssetStore([]models.AssetRecord{{TagID: "x", RemainingUsefulLife: 4}})
	assert.Empty(t, Recommendations(store))
	assert.Empty(t, Recommendations(EmptyAssetStore()))
}

func TestDepartmentAnalysis(t *testing.T) {
	stats := DepartmentAnalysis(SampleAssets())

	require.Len(t, stats, 4)
	names := make([]string, len(stats))
	for i, s := range stats {
		names[i] = s.Custodian
	}
	assert.True(t, sort.StringsAreSorted(names))

	var facilities models.DepartmentStats
	for _, s := range stats {
		if s.Custodian == facilitiesDept {
			facilities = s
		}
	}
	assert.Equal(t, 7, facilities.Count)
	assert.InDelta(t, 585.0, facilities.TotalNetBookValue, 1e-9)
	assert.InDelta(t, 585.0, facilities.TotalCost, 1e-9)
	assert.InDelta(t, 2.07, facilities.MeanRemainingLife, 1e-9)

	assert.Empty(t, DepartmentAnalysis(EmptyAssetStore()))
}

func TestCitiesAndDepartments(t *testing.T) {
	store := SampleAssets()

	assert.Equal(t, []string{"جدة", "الرياض"}, Cities(store))
	assert.Equal(t, []string{
		facilitiesDept,
		"ادارة التخطيط و قياس الأداء",
		"مركز المخاطر الجيولوجية",
		"ادارة الامن والصحة والسلامة",
	}, Departments(store))
	assert.Empty(t, Cities(EmptyAssetStore()))
}
