package models

// LocationKeyword maps a spelling found in a query to the canonical city stored on records.
type LocationKeyword struct {
	Keyword string `yaml:"keyword" json:"keyword"`
	City    string `yaml:"city" json:"city"`
}

// AssetCategory is an asset type together with the description synonyms that identify it.
type AssetCategory struct {
	Name     string   `yaml:"name" json:"name"`
	Synonyms []string `yaml:"synonyms" json:"synonyms"`
}

// DepartmentRule narrows results to custodians matching CustodianTerms when any QueryWords occur.
type DepartmentRule struct {
	QueryWords     []string `yaml:"query_words" json:"query_words"`
	CustodianTerms []string `yaml:"custodian_terms" json:"custodian_terms"`
}

// ChatKeywords holds the trigger words of each chat answer bucket.
// Buckets are checked in the order maintenance, statistics, cities, cost, age.
type ChatKeywords struct {
	Maintenance []string `yaml:"maintenance" json:"maintenance"`
	Statistics  []string `yaml:"statistics" json:"statistics"`
	Cities      []string `yaml:"cities" json:"cities"`
	Cost        []string `yaml:"cost" json:"cost"`
	Age         []string `yaml:"age" json:"age"`
}

// KeywordTables is the full configuration of the rule-based query interpreter.
// Slices are ordered: the first matching entry of a category wins.
type KeywordTables struct {
	Locations     []LocationKeyword `yaml:"locations" json:"locations"`
	AssetTypes    []AssetCategory   `yaml:"asset_types" json:"asset_types"`
	PricePatterns []string          `yaml:"price_patterns" json:"price_patterns"`
	Department    DepartmentRule    `yaml:"department" json:"department"`
	Chat          ChatKeywords      `yaml:"chat" json:"chat"`
}
