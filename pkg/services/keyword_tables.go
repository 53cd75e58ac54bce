package services

import "smart-assets-api/pkg/models"

// DefaultKeywordTables returns the built-in Arabic keyword configuration.
func DefaultKeywordTables() models.KeywordTables {
	return models.KeywordTables{
		Locations: []models.LocationKeyword{
			{Keyword: "جدة", City: "جدة"},
			{Keyword: "الرياض", City: "الرياض"},
			{Keyword: "مكة", City: "مكة المكرمة"},
			{Keyword: "مكه", City: "مكة المكرمة"},
		},
		AssetTypes: []models.AssetCategory{
			{Name: "كمبيوتر", Synonyms: []string{"حاسب", "كمبيوتر", "كومبيوتر", "لابتوب"}},
			{Name: "هاتف", Synonyms: []string{"هاتف", "تلفون", "اتصال"}},
			{Name: "انارة", Synonyms: []string{"انارة", "إنارة", "عمود", "إناره", "اناره"}},
			{Name: "معدات", Synonyms: []string{"معدات", "جهاز", "آلة"}},
		},
		PricePatterns: []string{
			`اكثر من (\d+(?:\.\d+)?)`,
			`أكثر من (\d+(?:\.\d+)?)`,
			`أكبر من (\d+(?:\.\d+)?)`,
			`اكبر من (\d+(?:\.\d+)?)`,
			`more than (\d+(?:\.\d+)?)`,
			`greater than (\d+(?:\.\d+)?)`,
		},
		Department: models.DepartmentRule{
			QueryWords:     []string{"تقنية", "معلومات", "حاسب آلي"},
			CustodianTerms: []string{"تقنية", "معلومات"},
		},
		Chat: models.ChatKeywords{
			Maintenance: []string{"صيانة", "عاجل", "أولوية", "عاجلة"},
			Statistics:  []string{"إحصائيات", "أعداد", "إجمالي", "إحصائية"},
			Cities:      []string{"جدة", "الرياض"},
			Cost:        []string{"تكلفة", "سعر", "ثمن", "قيمة"},
			Age:         []string{"عمر", "قديم", "مستعمل", "جديد"},
		},
	}
}

// MergeKeywordTables overlays every non-empty section of override onto base.
func MergeKeywordTables(base, override models.KeywordTables) models.KeywordTables {
	if len(override.Locations) > 0 {
		base.Locations = override.Locations
	}
	if len(override.AssetTypes) > 0 {
		base.AssetTypes = override.AssetTypes
	}
	if len(override.PricePatterns) > 0 {
		base.PricePatterns = override.PricePatterns
	}
	if len(override.Department.QueryWords) > 0 {
		base.Department.QueryWords = override.Department.QueryWords
	}
	if len(override.Department.CustodianTerms) > 0 {
		base.Department.CustodianTerms = override.Department.CustodianTerms
	}
	if len(override.Chat.Maintenance) > 0 {
		base.Chat.Maintenance = override.Chat.Maintenance
	}
	if len(override.Chat.Statistics) > 0 {
		base.Chat.Statistics = override.Chat.Statistics
	}
	if len(override.Chat.Cities) > 0 {
		base.Chat.Cities = override.Chat.Cities
	}
	if len(override.Chat.Cost) > 0 {
		base.Chat.Cost = override.Chat.Cost
	}
	if len(override.Chat.Age) > 0 {
		base.Chat.Age = override.Chat.Age
	}
	return base
}
