package services

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"smart-assets-api/pkg/models"
)

// ChatIntent is the answer bucket selected for a chat question.
type ChatIntent string

const (
	IntentMaintenance ChatIntent = "maintenance"
	IntentStatistics  ChatIntent = "statistics"
	IntentCity        ChatIntent = "city"
	IntentCost        ChatIntent = "cost"
	IntentAge         ChatIntent = "age"
	IntentHelp        ChatIntent = "help"
)

const (
	chatHelpMessage = "🤔 **المساعد:** يمكنني مساعدتك في:\n- معلومات الصيانة والأولويات\n- إحصائيات الأصول العامة\n- البحث حسب المدينة\n- تحليل التكاليف والأعمار\n\n💡 **جرب:** 'ما هي الأصول العاجلة؟' أو 'اعطني إحصائيات جدة'"
	chatErrorFormat = "❌ حدث خطأ في معالجة سؤالك: %v"
)

// digitFolder maps Arabic-Indic and Persian digits to ASCII so price phrases parse.
var digitFolder = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4", "٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4", "۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

// QueryInterpreter maps free-text queries onto record filters and canned answers
// using ordered keyword tables.
type QueryInterpreter struct {
	tables        models.KeywordTables
	pricePatterns []*regexp.Regexp
}

// NewQueryInterpreter compiles the price patterns of tables.
func NewQueryInterpreter(tables models.KeywordTables) (*QueryInterpreter, error) {
	patterns := make([]*regexp.Regexp, 0, len(tables.PricePatterns))
	for _, p := range tables.PricePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid price pattern %q: %w", p, err)
		}
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("price pattern %q has no capture group", p)
		}
		patterns = append(patterns, re)
	}
	return &QueryInterpreter{tables: tables, pricePatterns: patterns}, nil
}

// Tables returns the keyword configuration in use.
func (qi *QueryInterpreter) Tables() models.KeywordTables {
	return qi.tables
}

// Search narrows store by the location, asset type, price and department hints found in query.
// Each filter is applied to the result of the previous one; an empty query returns store itself.
func (qi *QueryInterpreter) Search(query string, store *AssetStore) *AssetStore {
	if strings.TrimSpace(query) == "" {
		return store
	}
	q := normalizeQuery(query)
	results := store

	for _, loc := range qi.tables.Locations {
		if loc.Keyword != "" && strings.Contains(q, strings.ToLower(loc.Keyword)) {
			city := loc.City
			results = results.Filter(func(r models.AssetRecord) bool { return r.City == city })
			break
		}
	}

	for _, category := range qi.tables.AssetTypes {
		triggers := append([]string{category.Name}, category.Synonyms...)
		if containsAny(q, triggers) {
			synonyms := lowerAll(category.Synonyms)
			if len(synonyms) == 0 {
				synonyms = lowerAll([]string{category.Name})
			}
			results = results.Filter(func(r models.AssetRecord) bool {
				return containsAny(strings.ToLower(r.Description), synonyms)
			})
			break
		}
	}

	if threshold, ok := qi.priceThreshold(q); ok {
		results = results.Filter(func(r models.AssetRecord) bool { return r.Cost > threshold })
	}

	if containsAny(q, qi.tables.Department.QueryWords) {
		terms := lowerAll(qi.tables.Department.CustodianTerms)
		results = results.Filter(func(r models.AssetRecord) bool {
			return containsAny(strings.ToLower(r.Custodian), terms)
		})
	}

	return results
}

// priceThreshold returns the number captured by the first matching price pattern.
func (qi *QueryInterpreter) priceThreshold(q string) (float64, bool) {
	for _, re := range qi.pricePatterns {
		m := re.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// Classify returns the chat bucket for query and, for IntentCity, the city it names.
// Buckets are tried in a fixed order and the first match wins.
func (qi *QueryInterpreter) Classify(query string) (ChatIntent, string) {
	q := normalizeQuery(query)
	chat := qi.tables.Chat

	switch {
	case containsAny(q, chat.Maintenance):
		return IntentMaintenance, ""
	case containsAny(q, chat.Statistics):
		return IntentStatistics, ""
	}
	for _, city := range chat.Cities {
		if city != "" && strings.Contains(q, strings.ToLower(city)) {
			return IntentCity, city
		}
	}
	switch {
	case containsAny(q, chat.Cost):
		return IntentCost, ""
	case containsAny(q, chat.Age):
		return IntentAge, ""
	}
	return IntentHelp, ""
}

// Answer produces the canned response for query. It never fails: computation errors are
// reported inside the returned text.
func (qi *QueryInterpreter) Answer(query string, store *AssetStore) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ [assistant] recovered while answering %q: %v", query, r)
			answer = fmt.Sprintf(chatErrorFormat, r)
		}
	}()

	intent, city := qi.Classify(query)
	text, err := qi.answerFor(intent, city, store)
	if err != nil {
		log.Printf("⚠️ [assistant] %s answer failed: %v", intent, err)
		return fmt.Sprintf(chatErrorFormat, err)
	}
	return text
}

func (qi *QueryInterpreter) answerFor(intent ChatIntent, city string, store *AssetStore) (string, error) {
	switch intent {
	case IntentMaintenance:
		return fmt.Sprintf("🔔 **توصيات الصيانة:**\n- الأصول ذات الأولوية العالية: %d أصل\n- الأصول ذات الأولوية المتوسطة: %d أصل\n\nيوصى بمراجعة هذه الأصول قريباً.",
			store.CountPriority(models.PriorityHigh), store.CountPriority(models.PriorityMedium)), nil

	case IntentStatistics:
		insights := Summarize(store)
		return fmt.Sprintf("📊 **الإحصائيات العامة:**\n- إجمالي الأصول: %d\n- القيمة الإجمالية: %s ريال\n- الأصول عالية الأولوية: %d\n- المدن: %d مدينة",
			insights.TotalCount, FormatCurrency(insights.TotalValue), insights.HighPriorityCount, len(insights.CityDistribution)), nil

	case IntentCity:
		cityAssets := store.Filter(func(r models.AssetRecord) bool { return r.City == city })
		return fmt.Sprintf("🏙️ **أصول %s:**\n- العدد: %d أصل\n- القيمة: %s ريال\n- الأصول عالية الأولوية: %d أصل",
			city, cityAssets.Len(), FormatCurrency(cityAssets.TotalNetBookValue()), cityAssets.CountPriority(models.PriorityHigh)), nil

	case IntentCost:
		stats, err := costStats(store)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("💰 **تحليل التكاليف:**\n- متوسط التكلفة: %s ريال\n- أعلى تكلفة: %s ريال\n- أدنى تكلفة: %s ريال",
			FormatCurrency(stats.mean), FormatCurrency(stats.max), FormatCurrency(stats.min)), nil

	case IntentAge:
		if store.IsEmpty() {
			return "", fmt.Errorf("mean remaining life: %w", ErrEmptyStore)
		}
		total, old := 0.0, 0
		for _, r := range store.all() {
			total += r.RemainingUsefulLife
			if r.RemainingUsefulLife < 1 {
				old++
			}
		}
		return fmt.Sprintf("⏳ **تحليل الأعمار:**\n- متوسط العمر المتبقي: %s سنة\n- الأصول التي عمرها أقل من سنة: %d أصل",
			FormatYears(total/float64(store.Len())), old), nil
	}
	return chatHelpMessage, nil
}

type costSummary struct {
	mean, max, min float64
}

func costStats(store *AssetStore) (costSummary, error) {
	if store.IsEmpty() {
		return costSummary{}, fmt.Errorf("cost statistics: %w", ErrEmptyStore)
	}
	s := costSummary{max: math.Inf(-1), min: math.Inf(1)}
	total := 0.0
	for _, r := range store.all() {
		total += r.Cost
		s.max = math.Max(s.max, r.Cost)
		s.min = math.Min(s.min, r.Cost)
	}
	s.mean = total / float64(store.Len())
	return s, nil
}

func normalizeQuery(query string) string {
	return digitFolder.Replace(strings.ToLower(query))
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}
