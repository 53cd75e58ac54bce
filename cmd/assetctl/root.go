package main

import (
	"context"
	"os"

	config "smart-assets-api/configs"
	"smart-assets-api/pkg/app"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	sourceFlag   string
	keywordsFlag string

	assetApp *app.App
)

var rootCmd = &cobra.Command{
	Use:   "assetctl",
	Short: "Query the asset inventory from the terminal",
	Long: StyleTitle.Render("assetctl") + " - smart asset inventory\n\n" +
		"Search assets with keyword queries, ask the assistant canned questions\n" +
		"and print dashboard analytics. Without --source the sample dataset is used.",
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "", "asset sheet path (.xlsx/.csv) or Google Sheets URL (default $ASSETS_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&keywordsFlag, "keywords", "", "YAML keyword tables (default $KEYWORDS_FILE)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(departmentsCmd)
	rootCmd.AddCommand(reportCmd)
}

func initializeApp(cmd *cobra.Command, args []string) error {
	// a missing .env is normal for the CLI; flags and the environment still apply
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if sourceFlag != "" {
		cfg.AssetsSource = sourceFlag
	}
	if keywordsFlag != "" {
		cfg.KeywordsFile = keywordsFlag
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		return err
	}
	assetApp = a
	return nil
}
