package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"runway/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		fmt.Printf("  Editing %s\n\n", config.ConfigPath())
	}
	cfg, _ := config.Load()

	balance := strconv.FormatFloat(cfg.Forecast.StartingBalance, 'f', -1, 64)
	threshold := strconv.FormatFloat(cfg.Forecast.RiskThreshold, 'f', -1, 64)
	txFile := cfg.General.TransactionsFile
	invFile := cfg.General.InvoicesFile

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Starting cash balance").
				Description("Seed for the 90-day balance projection.").
				Value(&balance).
				Validate(validateNumber),
			huh.NewInput().
				Title("Risk threshold").
				Description("Alert when the projected balance drops below this.").
				Value(&threshold).
				Validate(validateNumber),
			huh.NewInput().
				Title("Default transactions CSV").
				Description("Optional, used when --transactions is not passed.").
				Value(&txFile),
			huh.NewInput().
				Title("Default invoices CSV").
				Description("Optional, used when --invoices is not passed.").
				Value(&invFile),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.Forecast.StartingBalance, _ = strconv.ParseFloat(balance, 64)
	cfg.Forecast.RiskThreshold, _ = strconv.ParseFloat(threshold, 64)
	cfg.General.TransactionsFile = txFile
	cfg.General.InvoicesFile = invFile

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\n  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `runway setup` anytime to reconfigure.")
	return nil
}

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}
