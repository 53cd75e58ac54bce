package services

import (
	"errors"
	"math"
	"strings"

	"smart-assets-api/pkg/models"
)

// UnspecifiedText is stored in text fields that are missing from the source sheet.
const UnspecifiedText = "غير محدد"

// ErrEmptyStore is returned by computations that are undefined without records (mean, min, max).
var ErrEmptyStore = errors.New("no assets loaded")

// AssetStore is an ordered, read-only collection of normalized asset records.
// Order is the row order of the source sheet.
type AssetStore struct {
	records []models.AssetRecord
}

// NewAssetStore normalizes the given records and returns them as a store.
func NewAssetStore(records []models.AssetRecord) *AssetStore {
	normalized := make([]models.AssetRecord, len(records))
	for i, r := range records {
		normalized[i] = NormalizeRecord(r)
	}
	return &AssetStore{records: normalized}
}

// EmptyAssetStore returns a store without records.
func EmptyAssetStore() *AssetStore {
	return &AssetStore{records: []models.AssetRecord{}}
}

// NormalizeRecord applies the ingestion defaults and recomputes the maintenance priority.
func NormalizeRecord(r models.AssetRecord) models.AssetRecord {
	r.TagID = strings.TrimSpace(r.TagID)
	r.Description = defaultText(r.Description)
	r.City = defaultText(r.City)
	r.Custodian = defaultText(r.Custodian)
	r.Manufacturer = strings.TrimSpace(r.Manufacturer)

	r.Cost = nonNegative(r.Cost)
	r.NetBookValue = nonNegative(r.NetBookValue)
	r.RemainingUsefulLife = finiteOrZero(r.RemainingUsefulLife)
	r.DepreciationAmount = finiteOrZero(r.DepreciationAmount)
	r.AccumulatedDepreciation = finiteOrZero(r.AccumulatedDepreciation)

	r.MaintenancePriority = models.PriorityFor(r.RemainingUsefulLife)
	return r
}

// Len returns the number of records. A nil store is empty.
func (s *AssetStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// IsEmpty reports whether the store has no records.
func (s *AssetStore) IsEmpty() bool {
	return s.Len() == 0
}

// Records returns a copy of the records in store order.
func (s *AssetStore) Records() []models.AssetRecord {
	if s == nil {
		return []models.AssetRecord{}
	}
	out := make([]models.AssetRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Filter returns the subset of records for which keep returns true, preserving order.
func (s *AssetStore) Filter(keep func(r models.AssetRecord) bool) *AssetStore {
	if s == nil {
		return EmptyAssetStore()
	}
	subset := make([]models.AssetRecord, 0, len(s.records))
	for _, r := range s.records {
		if keep(r) {
			subset = append(subset, r)
		}
	}
	return &AssetStore{records: subset}
}

// CountPriority counts the records with the given maintenance priority.
func (s *AssetStore) CountPriority(p models.Priority) int {
	n := 0
	for _, r := range s.all() {
		if r.MaintenancePriority == p {
			n++
		}
	}
	return n
}

// TotalNetBookValue sums the net book value of every record.
func (s *AssetStore) TotalNetBookValue() float64 {
	total := 0.0
	for _, r := range s.all() {
		total += r.NetBookValue
	}
	return total
}

func (s *AssetStore) all() []models.AssetRecord {
	if s == nil {
		return nil
	}
	return s.records
}

func defaultText(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "nan") {
		return UnspecifiedText
	}
	return v
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	v = finiteOrZero(v)
	if v < 0 {
		return 0
	}
	return v
}
