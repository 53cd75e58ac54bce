package main

import (
	"fmt"
	"strings"

	"smart-assets-api/pkg/models"
	"smart-assets-api/pkg/services"

	"github.com/spf13/cobra"
)

var recommendLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Filter assets with a free-text Arabic query",
	Example: `  assetctl search "انارة في جدة"
  assetctl search "اكثر من 50"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := assetApp.Interpreter.Search(strings.Join(args, " "), assetApp.Assets.Current())
		if results.IsEmpty() {
			fmt.Println(StyleMuted.Render("لم يتم العثور على نتائج"))
			return nil
		}
		fmt.Print(renderAssets(results))
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:     "ask <question>",
	Short:   "Ask the asset assistant a question",
	Example: `  assetctl ask "ما هي الأصول التي تحتاج صيانة عاجلة؟"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answer := assetApp.Interpreter.Answer(strings.Join(args, " "), assetApp.Assets.Current())
		fmt.Println(StyleBox.Render(answer))
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print dashboard totals and distributions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		insights := services.Summarize(assetApp.Assets.Current())

		cards := fmt.Sprintf("إجمالي الأصول: %d\nالقيمة الإجمالية: %s ريال\nأولوية عالية: %s\nأولوية متوسطة: %s",
			insights.TotalCount,
			services.FormatCurrency(insights.TotalValue),
			StyleHigh.Render(fmt.Sprint(insights.HighPriorityCount)),
			StyleMedium.Render(fmt.Sprint(insights.MediumPriorityCount)),
		)
		fmt.Println(StyleTitle.Render("📊 "+assetApp.Assets.Source()))
		fmt.Println(StyleBox.Render(cards))

		identity := func(s string) string { return s }
		fmt.Print(StyleSection.Render(renderCounts("🏙️ المدن", insights.CityDistribution, identity)))
		fmt.Println()
		fmt.Print(StyleSection.Render(renderCounts("🔔 الأولويات", insights.PriorityDistribution, func(s string) string {
			return models.Priority(s).Label()
		})))
		fmt.Println()

		fmt.Println(StyleSection.Render(StyleHeader.Render("💎 الأعلى قيمة")))
		for i, r := range insights.TopByValue {
			fmt.Printf("  %d. %s  %s  %s ريال\n", i+1, r.TagID, r.Description, services.FormatCurrency(r.NetBookValue))
		}
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List maintenance recommendations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		recs := services.Recommendations(assetApp.Assets.Current())
		limit := recommendLimit
		if limit <= 0 {
			limit = assetApp.Config.RecommendationLimit
		}
		if len(recs) > limit {
			recs = recs[:limit]
		}
		if len(recs) == 0 {
			fmt.Println(StyleLow.Render("✅ لا توجد أصول تحتاج صيانة"))
			return nil
		}
		for _, rec := range recs {
			fmt.Printf("%s %s  %s\n   %s | %s | %s سنة | %s ريال\n",
				priorityStyle(rec.Priority).Render("● "+rec.Priority.Label()),
				rec.AssetRef, rec.Description,
				rec.Reason, rec.Department,
				services.FormatYears(rec.RemainingLife),
				services.FormatCurrency(rec.Cost),
			)
		}
		return nil
	},
}

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "Print per-custodian aggregates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := services.DepartmentAnalysis(assetApp.Assets.Current())
		if len(stats) == 0 {
			fmt.Println(StyleMuted.Render("لا توجد بيانات"))
			return nil
		}
		for _, d := range stats {
			fmt.Printf("%s\n   العدد: %d | القيمة الدفترية: %s | التكلفة: %s | متوسط العمر: %s سنة\n",
				StyleHeader.Render(d.Custodian), d.Count,
				services.FormatCurrency(d.TotalNetBookValue),
				services.FormatCurrency(d.TotalCost),
				services.FormatYears(d.MeanRemainingLife),
			)
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:       "report <kind> [city|department]",
	Short:     "Print a canned asset report",
	Long:      "Kinds: all, high_priority, by_city, by_department, low_cost, high_cost.",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: reportKindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		param := ""
		if len(args) == 2 {
			param = args[1]
		}
		report, err := services.BuildReport(assetApp.Assets.Current(), services.ReportKind(args[0]), param)
		if err != nil {
			fmt.Println(StyleError.Render("❌ " + err.Error()))
			return err
		}
		fmt.Print(renderAssets(report))
		return nil
	},
}

func reportKindNames() []string {
	names := make([]string, len(services.ReportKinds))
	for i, k := range services.ReportKinds {
		names[i] = string(k)
	}
	return names
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "maximum recommendations (default $RECOMMENDATION_LIMIT)")
}
