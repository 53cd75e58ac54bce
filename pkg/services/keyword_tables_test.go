package services

import (
	"testing"

	"smart-assets-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestMergeKeywordTables(t *testing.T) {
	base := DefaultKeywordTables()
	merged := MergeKeywordTables(base, models.KeywordTables{
		PricePatterns: []string{`over (\d+)`},
		Department:    models.DepartmentRule{CustodianTerms: []string{"IT"}},
		Chat:          models.ChatKeywords{Age: []string{"age"}},
	})

	assert.Equal(t, []string{`over (\d+)`}, merged.PricePatterns)
	assert.Equal(t, []string{"IT"}, merged.Department.CustodianTerms)
	assert.Equal(t, base.Department.QueryWords, merged.Department.QueryWords)
	assert.Equal(t, []string{"age"}, merged.Chat.Age)
	assert.Equal(t, base.Chat.Cost, merged.Chat.Cost)
	assert.Equal(t, base.Locations, merged.Locations)
	assert.Equal(t, base.AssetTypes, merged.AssetTypes)
}

func TestMergeKeywordTablesEmptyOverride(t *testing.T) {
	base := DefaultKeywordTables()
	assert.Equal(t, base, MergeKeywordTables(base, models.KeywordTables{}))
}
