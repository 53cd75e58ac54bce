package services

import (
	"math"
	"sort"

	"smart-assets-api/pkg/models"
)

const (
	topAssetsLimit     = 5
	reasonHighPriority = "العمر المتبقي أقل من سنة"
	reasonMedPriority  = "العمر المتبقي أقل من سنتين"
)

// Summarize computes the dashboard totals and distributions of store.
// An empty store yields zero counts and empty distributions.
func Summarize(store *AssetStore) models.Insights {
	records := store.all()

	cities := newCounter()
	priorities := newCounter()
	insights := models.Insights{TotalCount: len(records)}
	for _, r := range records {
		insights.TotalValue += r.NetBookValue
		switch r.MaintenancePriority {
		case models.PriorityHigh:
			insights.HighPriorityCount++
		case models.PriorityMedium:
			insights.MediumPriorityCount++
		}
		cities.add(r.City)
		priorities.add(string(r.MaintenancePriority))
	}

	insights.CityDistribution = cities.sorted()
	insights.PriorityDistribution = priorities.sorted()
	insights.TopByValue = topByValue(records, topAssetsLimit)
	return insights
}

// topByValue returns the n records with the largest net book value; ties keep store order.
func topByValue(records []models.AssetRecord, n int) []models.AssetRecord {
	ranked := make([]models.AssetRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetBookValue > ranked[j].NetBookValue
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Recommendations lists every High and Medium priority asset, High first and then by
// descending cost. Equal keys keep store order.
func Recommendations(store *AssetStore) []models.Recommendation {
	actionable := store.Filter(func(r models.AssetRecord) bool {
		return r.MaintenancePriority == models.PriorityHigh || r.MaintenancePriority == models.PriorityMedium
	})

	recs := make([]models.Recommendation, 0, actionable.Len())
	for _, r := range actionable.all() {
		recs = append(recs, newRecommendation(r))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		hi, hj := recs[i].Priority == models.PriorityHigh, recs[j].Priority == models.PriorityHigh
		if hi != hj {
			return hi
		}
		return recs[i].Cost > recs[j].Cost
	})
	return recs
}

func newRecommendation(r models.AssetRecord) models.Recommendation {
	reason := reasonMedPriority
	if r.MaintenancePriority == models.PriorityHigh {
		reason = reasonHighPriority
	}
	return models.Recommendation{
		AssetRef:      r.TagID,
		Description:   r.Description,
		Priority:      r.MaintenancePriority,
		Reason:        reason,
		RemainingLife: r.RemainingUsefulLife,
		Department:    r.Custodian,
		Cost:          r.Cost,
		City:          r.City,
	}
}

// DepartmentAnalysis groups store by custodian. Aggregates are rounded to two decimals
// and groups are ordered by custodian name.
func DepartmentAnalysis(store *AssetStore) []models.DepartmentStats {
	groups := make(map[string]*models.DepartmentStats)
	lifeTotals := make(map[string]float64)
	for _, r := range store.all() {
		g, ok := groups[r.Custodian]
		if !ok {
			g = &models.DepartmentStats{Custodian: r.Custodian}
			groups[r.Custodian] = g
		}
		g.Count++
		g.TotalNetBookValue += r.NetBookValue
		g.TotalCost += r.Cost
		lifeTotals[r.Custodian] += r.RemainingUsefulLife
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.DepartmentStats, 0, len(names))
	for _, name := range names {
		g := groups[name]
		out = append(out, models.DepartmentStats{
			Custodian:         name,
			Count:             g.Count,
			TotalNetBookValue: round2(g.TotalNetBookValue),
			TotalCost:         round2(g.TotalCost),
			MeanRemainingLife: round2(lifeTotals[name] / float64(g.Count)),
		})
	}
	return out
}

// Cities lists the distinct cities of store in first-seen order.
func Cities(store *AssetStore) []string {
	return distinct(store, func(r models.AssetRecord) string { return r.City })
}

// Departments lists the distinct custodians of store in first-seen order.
func Departments(store *AssetStore) []string {
	return distinct(store, func(r models.AssetRecord) string { return r.Custodian })
}

func distinct(store *AssetStore, key func(models.AssetRecord) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range store.all() {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// counter counts keys and remembers the order in which they first appeared.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// sorted returns the entries by descending count, ties in first-seen order.
func (c *counter) sorted() []models.CountEntry {
	entries := make([]models.CountEntry, 0, len(c.order))
	for _, k := range c.order {
		entries = append(entries, models.CountEntry{Key: k, Count: c.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
